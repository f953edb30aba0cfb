package core

import "time"

// DefaultMaxFrameTime caps how much wall time a single frame may feed
// into the accumulator.
const DefaultMaxFrameTime = 250 * time.Millisecond

// FixedStep turns variable frame times into a whole number of fixed
// simulation steps. Leftover time carries over to the next frame.
type FixedStep struct {
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
}

// NewFixedStep creates an accumulator for tickRate steps per second.
// A non-positive tickRate falls back to DefaultTickRate; a non-positive maxFrame to DefaultMaxFrameTime.
func NewFixedStep(tickRate int, maxFrame time.Duration) *FixedStep {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameTime
	}
	return &FixedStep{
		step:     time.Second / time.Duration(tickRate),
		maxFrame: maxFrame,
	}
}

// Advance adds elapsed wall time and returns how many steps are due.
// Negative elapsed time is ignored.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	f.acc += min(elapsed, f.maxFrame)

	n := int(f.acc / f.step)
	f.acc -= time.Duration(n) * f.step
	return n
}

// Step returns the fixed step duration.
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}

// RateCounter counts events per second over a sliding one-second window.
type RateCounter struct {
	elapsed time.Duration
	count   int
	rate    int
}

// Tick records one event that happened elapsed after the previous one.
// It returns true when a new per-second rate is available.
func (r *RateCounter) Tick(elapsed time.Duration) bool {
	return r.Add(1, elapsed)
}

// Add records n events over elapsed time.
func (r *RateCounter) Add(n int, elapsed time.Duration) bool {
	r.count += n
	r.elapsed += elapsed
	if r.elapsed < time.Second {
		return false
	}
	r.rate = r.count
	r.count = 0
	r.elapsed %= time.Second
	return true
}

// Rate returns the last completed per-second count.
func (r *RateCounter) Rate() int {
	return r.rate
}
