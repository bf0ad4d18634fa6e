package page

import (
	"bytes"
	_ "embed"
	"html/template"
	"sync"
	"time"
)

// Kind selects a notification's styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

const (
	// NotificationLifetime is how long a banner stays before it dismisses
	// itself.
	NotificationLifetime = 5 * time.Second
	// NotificationExit is the slide-out animation length.
	NotificationExit = 300 * time.Millisecond
)

//go:embed notification.html
var notificationSource string

var notificationTemplate = template.Must(template.New("notification").Parse(notificationSource))

// NotificationHTML renders a banner's inner markup. Unknown kinds render
// as info.
func NotificationHTML(message string, kind Kind) (template.HTML, error) {
	icon := "info-circle"
	if kind == KindSuccess {
		icon = "check-circle"
	}
	var buf bytes.Buffer
	err := notificationTemplate.Execute(&buf, struct {
		Icon    string
		Message string
	}{icon, message})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Notifier shows transient banners.
type Notifier struct {
	clock    Clock
	mount    Mounter
	Lifetime time.Duration
	Exit     time.Duration
}

// NewNotifier returns a notifier with the default lifetime and exit
// animation. A nil clock means SystemClock.
func NewNotifier(clock Clock, mount Mounter) *Notifier {
	if clock == nil {
		clock = SystemClock
	}
	return &Notifier{
		clock:    clock,
		mount:    mount,
		Lifetime: NotificationLifetime,
		Exit:     NotificationExit,
	}
}

type noteState int

const (
	noteShown noteState = iota
	noteDismissing
	noteRemoved
)

// Notification is one mounted banner. Exactly one timer governs its
// auto-dismissal.
type Notification struct {
	clock  Clock
	exit   time.Duration
	banner Banner

	mu    sync.Mutex
	state noteState
	timer Timer
}

// Show mounts a banner for message. It returns nil when there is nowhere
// to mount it.
func (n *Notifier) Show(message string, kind Kind) *Notification {
	if n == nil || n.mount == nil {
		return nil
	}
	if kind != KindSuccess {
		kind = KindInfo
	}
	html, err := NotificationHTML(message, kind)
	if err != nil {
		return nil
	}

	note := &Notification{clock: n.clock, exit: n.Exit}
	note.mu.Lock()
	defer note.mu.Unlock()
	note.banner = n.mount.Mount(html, kind, note.Dismiss)
	if note.banner == nil {
		note.state = noteRemoved
		return note
	}
	note.timer = n.clock.AfterFunc(n.Lifetime, note.Dismiss)
	return note
}

// Dismiss starts the slide-out and removes the banner once it finishes.
// Calling it again, or after auto-dismissal, does nothing.
func (n *Notification) Dismiss() {
	if n == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state != noteShown {
		return
	}
	n.state = noteDismissing
	if n.timer != nil {
		n.timer.Stop()
	}
	n.banner.SlideOut()
	n.timer = n.clock.AfterFunc(n.exit, n.remove)
}

// Removed reports whether the banner has left the document.
func (n *Notification) Removed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state == noteRemoved
}

func (n *Notification) remove() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state != noteDismissing {
		return
	}
	n.state = noteRemoved
	n.timer = nil
	n.banner.Remove()
}
