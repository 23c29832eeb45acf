package core

import "time"

// FixedStep paces simulation updates at a steady interval, independent of the
// frame rate of the driver calling it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires every interval.
// The first ShouldStep call fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the step length. Non-positive values fall back to 100ms.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	f.step = interval
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval returns the current step length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Pause drops any time accumulated so far, so resuming does not burst.
func (f *FixedStep) Pause() {
	f.last = time.Time{}
	f.accumulator = 0
}
