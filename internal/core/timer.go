package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to Due reports one tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxCatchUp: 4}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60. Before
// the first Due the pending tick is resized to the new step.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
	if f.last.IsZero() {
		f.accumulator = f.step
	}
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Due reports how many ticks should run at time now. Backlog beyond a few
// ticks is dropped so a stalled loop does not spiral.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	if now.After(f.last) {
		f.accumulator += now.Sub(f.last)
	}
	f.last = now
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	if n > f.maxCatchUp {
		n = f.maxCatchUp
	}
	return n
}
