//go:build js && wasm

// Command site binds the page controller to the browser DOM. Build it with
// GOOS=js GOARCH=wasm into web/site.wasm.
package main

import (
	"html/template"
	"strings"
	"syscall/js"

	"github.com/alyradwan/portfolio/internal/page"
	"github.com/alyradwan/portfolio/internal/portfolio"
)

var (
	window   = js.Global()
	document = window.Get("document")
)

func main() {
	clock := page.SystemClock
	notifier := page.NewNotifier(clock, bannerMounter{})

	navLinks := queryAll(document, ".nav-link")
	links := make([]page.NavLink, 0, len(navLinks))
	for _, l := range navLinks {
		target := strings.TrimPrefix(l.Call("getAttribute", "href").String(), "#")
		links = append(links, page.NavLink{Target: target, Link: element{l}})
	}

	var contact *page.ContactForm
	form := document.Call("getElementById", "contact-form")
	if present(form) {
		button := lookup[page.Button](form, `button[type="submit"]`)
		contact = page.NewContactForm(clock, element{form}, button, notifier)
	}

	c := &page.Controller{
		Projects: portfolio.DefaultProjects(),
		Grid:     lookup[page.Content](document, "#projects-grid"),
		Navbar:   lookup[page.Styler](document, ".navbar"),
		Hero:     lookup[page.Styler](document, ".hero"),
		Menu:     page.NewMenu(lookup[page.Toggler](document, ".hamburger"), lookup[page.Toggler](document, ".nav-menu")),
		Nav:      page.NewHighlighter(links),
		Typing:   page.NewTypewriter(clock, lookup[page.TextSink](document, ".hero-title"), page.HeroLines, page.DefaultTyping),
		Contact:  contact,
	}

	if hamburger := document.Call("querySelector", ".hamburger"); present(hamburger) {
		listen(hamburger, "click", func(js.Value) { c.Menu.Toggle() })
	}
	for _, l := range navLinks {
		listen(l, "click", func(e js.Value) {
			e.Call("preventDefault")
			href := l.Call("getAttribute", "href").String()
			section := js.Null()
			if len(href) > 1 && href[0] == '#' {
				section = document.Call("getElementById", href[1:])
			}
			if !present(section) {
				c.Menu.Close()
				return
			}
			top := c.FollowLink(section.Get("offsetTop").Float())
			window.Call("scrollTo", map[string]any{"top": top, "behavior": "smooth"})
		})
	}
	if present(form) {
		listen(form, "submit", func(e js.Value) {
			e.Call("preventDefault")
			c.SubmitContact()
		})
	}
	listen(window, "scroll", func(js.Value) {
		c.Scroll(viewport(), sections(), fadeIns())
	})
	listen(window, "resize", func(js.Value) {
		c.Resize(viewport())
	})
	// The stylesheet only hides the body once html.js is set, and load may
	// already have fired by the time the module runs.
	document.Get("documentElement").Get("classList").Call("add", "js")
	markLoaded := func(js.Value) {
		document.Get("body").Get("classList").Call("add", "loaded")
	}
	if page.DocumentLoaded(document.Get("readyState").String()) {
		markLoaded(js.Undefined())
	} else {
		listen(window, "load", markLoaded)
	}

	if err := c.Init(viewport(), fadeIns()); err != nil {
		window.Get("console").Call("error", "page init: "+err.Error())
	}
	bindHover(".project-card", page.HoverProjectCard)
	bindHover(".skill-item", page.HoverSkillItem)

	select {}
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

func queryAll(root js.Value, selector string) []js.Value {
	list := root.Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

// lookup returns the first match under root as T, or T's zero value (a
// nil interface) when nothing matches.
func lookup[T any](root js.Value, selector string) T {
	var zero T
	v := root.Call("querySelector", selector)
	if !present(v) {
		return zero
	}
	return any(element{v}).(T)
}

func listen(target js.Value, event string, fn func(e js.Value)) {
	target.Call("addEventListener", event, js.FuncOf(func(_ js.Value, args []js.Value) any {
		e := js.Undefined()
		if len(args) > 0 {
			e = args[0]
		}
		fn(e)
		return nil
	}))
}

func viewport() page.Viewport {
	return page.Viewport{
		ScrollY: window.Get("scrollY").Float(),
		Width:   window.Get("innerWidth").Float(),
		Height:  window.Get("innerHeight").Float(),
	}
}

func sections() []page.Section {
	nodes := queryAll(document, "section")
	out := make([]page.Section, 0, len(nodes))
	for _, s := range nodes {
		out = append(out, page.Section{
			ID:     s.Get("id").String(),
			Top:    s.Get("offsetTop").Float(),
			Height: s.Get("offsetHeight").Float(),
		})
	}
	return out
}

func fadeIns() []page.Revealer {
	nodes := queryAll(document, ".fade-in")
	out := make([]page.Revealer, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, element{n})
	}
	return out
}

func bindHover(selector string, target page.HoverTarget) {
	for _, el := range queryAll(document, selector) {
		style := el.Get("style")
		listen(el, "mouseenter", func(js.Value) {
			style.Set("transform", page.HoverTransform(target, true))
		})
		listen(el, "mouseleave", func(js.Value) {
			style.Set("transform", page.HoverTransform(target, false))
		})
	}
}

// element adapts a DOM node to the page package's element interfaces.
type element struct {
	v js.Value
}

func (e element) SetHTML(html template.HTML) { e.v.Set("innerHTML", string(html)) }

func (e element) SetActive(on bool) { e.v.Get("classList").Call("toggle", "active", on) }

func (e element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e element) Top() float64 {
	return e.v.Call("getBoundingClientRect").Get("top").Float()
}

func (e element) Reveal() { e.v.Get("classList").Call("add", "visible") }

func (e element) Clear() { e.v.Set("innerHTML", "") }

func (e element) AppendText(s string) {
	e.v.Call("appendChild", document.Call("createTextNode", s))
}

func (e element) AppendLineBreak() {
	e.v.Call("appendChild", document.Call("createElement", "br"))
}

func (e element) Label() string { return e.v.Get("textContent").String() }

func (e element) SetLabel(label string) { e.v.Set("textContent", label) }

func (e element) SetDisabled(disabled bool) { e.v.Set("disabled", disabled) }

func (e element) Reset() { e.v.Call("reset") }

type bannerMounter struct{}

func (bannerMounter) Mount(html template.HTML, kind page.Kind, onClose func()) page.Banner {
	body := document.Get("body")
	if !present(body) {
		return nil
	}
	el := document.Call("createElement", "div")
	el.Set("className", "notification notification-"+string(kind))
	el.Set("innerHTML", string(html))
	body.Call("appendChild", el)

	b := &banner{v: el}
	if btn := el.Call("querySelector", ".notification-close"); present(btn) {
		b.onClose = js.FuncOf(func(js.Value, []js.Value) any {
			onClose()
			return nil
		})
		b.bound = true
		btn.Call("addEventListener", "click", b.onClose)
	}
	return b
}

type banner struct {
	v       js.Value
	onClose js.Func
	bound   bool
}

func (b *banner) SlideOut() {
	b.v.Get("style").Set("animation", "slideOutRight 0.3s ease")
}

func (b *banner) Remove() {
	if parent := b.v.Get("parentNode"); present(parent) {
		parent.Call("removeChild", b.v)
	}
	if b.bound {
		b.onClose.Release()
		b.bound = false
	}
}
