package page

import "html/template"

// Content is an element whose inner markup can be replaced.
type Content interface {
	SetHTML(html template.HTML)
}

// Toggler is an element carrying an on/off state class such as "active".
type Toggler interface {
	SetActive(on bool)
}

// Styler is an element with writable inline styles.
type Styler interface {
	SetStyle(property, value string)
}

// Revealer is an element tagged for fade-in.
type Revealer interface {
	// Top is the element's top edge relative to the viewport.
	Top() float64
	Reveal()
}

// TextSink receives the characters of the typing animation.
type TextSink interface {
	Clear()
	AppendText(s string)
	AppendLineBreak()
}

// Button is a form's submit control.
type Button interface {
	Label() string
	SetLabel(label string)
	SetDisabled(disabled bool)
}

// Resetter is a form that can be cleared.
type Resetter interface {
	Reset()
}

// Banner is a mounted notification element.
type Banner interface {
	SlideOut()
	// Remove detaches the element; it must tolerate being already detached.
	Remove()
}

// Mounter attaches notification markup to the document. onClose is wired
// to the banner's close control.
type Mounter interface {
	Mount(html template.HTML, kind Kind, onClose func()) Banner
}

// Viewport is the window state at the time of an event.
type Viewport struct {
	ScrollY float64
	Width   float64
	Height  float64
}
