package page

import "time"

// Timer is a scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Every timer in this package goes through one.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock runs timers on the Go runtime. Under GOOS=js the runtime
// backs these with the browser's timers.
var SystemClock Clock = systemClock{}
