package core

import "time"

// Phase represents the run lifecycle state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePerkChoice
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePerkChoice:
		return "perk-choice"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// FrameClock measures wall-clock time between frames for the per-frame
// simulation tick. Frame time is capped to avoid a spiral of death after a
// long stall (window dragged, machine asleep).
type FrameClock struct {
	last time.Time
}

const maxFrameTime = 0.25 // seconds

func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Tick returns the seconds elapsed since the previous call, capped. The
// first call after creation or Reset returns 0.
func (c *FrameClock) Tick() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	return dt
}

// Reset forgets the previous frame. Call when resuming from a pause so the
// paused interval is not billed to the next tick.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
