package editor

import "time"

// Scheduler schedules a callback after a delay and hands back a
// cancellation handle. The indirection exists so the timed auto-close can
// be triggered or skipped deterministically in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

type timerScheduler struct{}

// NewScheduler returns a Scheduler backed by time.AfterFunc.
func NewScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}
