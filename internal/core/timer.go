package core

import "time"

// MaxCatchUp bounds the ticks FixedStep releases in one call so a stalled
// frame does not trigger an unbounded burst.
const MaxCatchUp = 4096

// FixedStep paces simulation ticks at a steady rate independent of the frame
// rate driving it.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// TPS returns the configured tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Due returns how many ticks have elapsed since the previous call, capped at
// MaxCatchUp. The first call releases one tick.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	if n > MaxCatchUp {
		f.accumulator = 0
		return MaxCatchUp
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}
