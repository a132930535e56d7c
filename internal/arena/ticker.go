package arena

// TickScheduler turns elapsed play time into discrete ticks.
// The remainder carries over between calls, so pacing does not drift with
// frame timing.
type TickScheduler struct {
	Interval    float64
	accumulated float64
	enabled     bool
}

// NewTickScheduler creates a disabled scheduler with the given interval.
func NewTickScheduler(interval float64) TickScheduler {
	return TickScheduler{Interval: interval}
}

// Advance adds dt seconds and returns how many ticks fired. Nothing
// accumulates unless the state is Playing and ticking is enabled.
func (t *TickScheduler) Advance(state PlayState, dt float64) int {
	if state != StatePlaying || !t.enabled || dt <= 0 || t.Interval <= 0 {
		return 0
	}

	t.accumulated += dt
	ticks := 0
	for t.accumulated >= t.Interval {
		t.accumulated -= t.Interval
		ticks++
	}
	return ticks
}

// Start enables ticking and keeps any remainder (game start, resume).
func (t *TickScheduler) Start() {
	t.enabled = true
}

// Restart clears the remainder and enables ticking.
func (t *TickScheduler) Restart() {
	t.accumulated = 0
	t.enabled = true
}

// Reset clears the remainder and disables ticking.
func (t *TickScheduler) Reset() {
	t.accumulated = 0
	t.enabled = false
}

// Remainder returns accumulated time not yet consumed by a tick.
func (t *TickScheduler) Remainder() float64 {
	return t.accumulated
}

// Enabled reports whether ticking is on.
func (t *TickScheduler) Enabled() bool {
	return t.enabled
}
