package page

import (
	"errors"
	"sync"
	"time"
)

// ErrAlreadyStarted is returned by Typewriter.Start after the first call.
// A typewriter runs at most once.
var ErrAlreadyStarted = errors.New("page: typewriter already started")

// HeroLines is the code block typed into the hero title on load.
var HeroLines = []string{
	`const developer = {`,
	`  name: "Aly Radwan",`,
	`  role: "Software Engineering Student",`,
	`  passion: "Creating innovative solutions"`,
	`};`,
}

// TypingConfig sets the typewriter's pacing.
type TypingConfig struct {
	StartDelay time.Duration
	CharDelay  time.Duration
	LineDelay  time.Duration
}

// DefaultTyping is the pacing used on the page.
var DefaultTyping = TypingConfig{
	StartDelay: time.Second,
	CharDelay:  80 * time.Millisecond,
	LineDelay:  200 * time.Millisecond,
}

// TypingState is the typewriter's lifecycle position.
type TypingState int

const (
	TypingIdle TypingState = iota
	TypingActive
	TypingDone
	TypingCancelled
)

func (s TypingState) String() string {
	switch s {
	case TypingIdle:
		return "idle"
	case TypingActive:
		return "typing"
	case TypingDone:
		return "done"
	case TypingCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Typewriter reveals lines of text one character at a time, with a line
// break after each line. At most one step is scheduled at any moment and
// the typewriter owns it.
type Typewriter struct {
	clock Clock
	sink  TextSink
	lines [][]rune
	cfg   TypingConfig

	mu    sync.Mutex
	state TypingState
	line  int
	char  int
	timer Timer
	done  chan struct{}
}

// NewTypewriter prepares a typewriter writing lines into sink. A nil clock
// means SystemClock.
func NewTypewriter(clock Clock, sink TextSink, lines []string, cfg TypingConfig) *Typewriter {
	if clock == nil {
		clock = SystemClock
	}
	t := &Typewriter{
		clock: clock,
		sink:  sink,
		cfg:   cfg,
		done:  make(chan struct{}),
	}
	for _, l := range lines {
		t.lines = append(t.lines, []rune(l))
	}
	return t
}

// Start clears the sink and schedules the first character after the start
// delay. Without a sink the typewriter finishes immediately.
func (t *Typewriter) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TypingIdle {
		return ErrAlreadyStarted
	}
	if t.sink == nil {
		t.finish(TypingDone)
		return nil
	}
	t.state = TypingActive
	t.sink.Clear()
	t.schedule(t.cfg.StartDelay)
	return nil
}

// Cancel stops the pending step. Output written so far stays in place.
func (t *Typewriter) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case TypingIdle, TypingActive:
		if t.timer != nil {
			t.timer.Stop()
		}
		t.finish(TypingCancelled)
	}
}

// State returns the current lifecycle state.
func (t *Typewriter) State() TypingState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done is closed once the typewriter finishes or is cancelled.
func (t *Typewriter) Done() <-chan struct{} { return t.done }

func (t *Typewriter) step() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TypingActive {
		return
	}
	t.timer = nil
	if t.line >= len(t.lines) {
		t.finish(TypingDone)
		return
	}

	line := t.lines[t.line]
	if t.char < len(line) {
		t.sink.AppendText(string(line[t.char]))
		t.char++
		t.schedule(t.cfg.CharDelay)
		return
	}

	t.sink.AppendLineBreak()
	t.line++
	t.char = 0
	if t.line >= len(t.lines) {
		t.finish(TypingDone)
		return
	}
	t.schedule(t.cfg.LineDelay)
}

// schedule and finish expect t.mu to be held.
func (t *Typewriter) schedule(d time.Duration) {
	t.timer = t.clock.AfterFunc(d, t.step)
}

func (t *Typewriter) finish(s TypingState) {
	t.state = s
	t.timer = nil
	close(t.done)
}
