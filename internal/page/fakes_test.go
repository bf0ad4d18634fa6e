package page

import (
	"html/template"
	"strings"
	"sync"
	"time"
)

// manualClock fires timers only when advanced.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward, firing due timers in order. Callbacks may
// schedule new timers, which fire too if they fall inside the window.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *manualTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.fired = true
		c.now = next.at
		c.mu.Unlock()
		next.f()
	}
}

func (c *manualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fakeContent struct {
	html  template.HTML
	calls int
}

func (f *fakeContent) SetHTML(html template.HTML) {
	f.html = html
	f.calls++
}

type fakeToggler struct{ on bool }

func (f *fakeToggler) SetActive(on bool) { f.on = on }

type fakeStyler struct{ styles map[string]string }

func (f *fakeStyler) SetStyle(property, value string) {
	if f.styles == nil {
		f.styles = map[string]string{}
	}
	f.styles[property] = value
}

type fakeRevealer struct {
	top      float64
	revealed bool
}

func (f *fakeRevealer) Top() float64 { return f.top }
func (f *fakeRevealer) Reveal()      { f.revealed = true }

type fakeSink struct {
	mu     sync.Mutex
	buf    strings.Builder
	clears int
}

func (f *fakeSink) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf.Reset()
	f.clears++
}

func (f *fakeSink) AppendText(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf.WriteString(s)
}

func (f *fakeSink) AppendLineBreak() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf.WriteString("<br>")
}

func (f *fakeSink) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.String()
}

type fakeButton struct {
	label    string
	disabled bool
}

func (f *fakeButton) Label() string          { return f.label }
func (f *fakeButton) SetLabel(label string)  { f.label = label }
func (f *fakeButton) SetDisabled(state bool) { f.disabled = state }

type fakeForm struct{ resets int }

func (f *fakeForm) Reset() { f.resets++ }

type fakeBanner struct {
	html     template.HTML
	kind     Kind
	onClose  func()
	slideOut int
	removed  int
}

func (b *fakeBanner) SlideOut() { b.slideOut++ }
func (b *fakeBanner) Remove()   { b.removed++ }

type fakeMounter struct{ banners []*fakeBanner }

func (m *fakeMounter) Mount(html template.HTML, kind Kind, onClose func()) Banner {
	b := &fakeBanner{html: html, kind: kind, onClose: onClose}
	m.banners = append(m.banners, b)
	return b
}
