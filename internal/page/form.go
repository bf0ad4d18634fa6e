package page

import (
	"sync"
	"time"
)

const (
	// ContactSubmitDelay is the simulated round trip of a form submission.
	ContactSubmitDelay = 2 * time.Second
	// SendingLabel replaces the submit button's text while busy.
	SendingLabel = "Sending..."
	// ContactSuccessMessage is shown once the simulated submission ends.
	ContactSuccessMessage = "Message sent successfully! I'll get back to you soon."
)

// ContactForm simulates a contact-form submission on the client. It does
// not send anything over the network.
type ContactForm struct {
	clock    Clock
	form     Resetter
	button   Button
	notifier *Notifier
	Delay    time.Duration

	mu    sync.Mutex
	busy  bool
	label string
}

// NewContactForm wires the form, its submit button and the notifier used
// for the confirmation. Any of them may be nil. A nil clock means
// SystemClock.
func NewContactForm(clock Clock, form Resetter, button Button, notifier *Notifier) *ContactForm {
	if clock == nil {
		clock = SystemClock
	}
	return &ContactForm{
		clock:    clock,
		form:     form,
		button:   button,
		notifier: notifier,
		Delay:    ContactSubmitDelay,
	}
}

// Submit puts the form into its busy state and schedules completion. It
// returns false if a submission is already in flight.
func (f *ContactForm) Submit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.busy {
		return false
	}
	f.busy = true
	if f.button != nil {
		f.label = f.button.Label()
		f.button.SetLabel(SendingLabel)
		f.button.SetDisabled(true)
	}
	f.clock.AfterFunc(f.Delay, f.complete)
	return true
}

// Busy reports whether a submission is in flight.
func (f *ContactForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

func (f *ContactForm) complete() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.notifier.Show(ContactSuccessMessage, KindSuccess)
	if f.form != nil {
		f.form.Reset()
	}
	if f.button != nil {
		f.button.SetLabel(f.label)
		f.button.SetDisabled(false)
	}
	f.busy = false
}
