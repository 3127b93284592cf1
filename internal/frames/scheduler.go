// Package frames abstracts the display-refresh boundary used to defer work
// until the host has had a chance to mount pending output nodes.
package frames

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval approximates one frame at 60 Hz.
const DefaultInterval = time.Second / 60

// Scheduler suspends the caller until the next display-refresh boundary.
type Scheduler interface {
	// NextFrame blocks until the next frame, or until ctx is done.
	NextFrame(ctx context.Context) error
}

// TickScheduler is the production Scheduler: a fixed-interval timer standing
// in for the host's animation-frame callback.
type TickScheduler struct {
	Interval time.Duration
}

// NewTickScheduler creates a TickScheduler with the given interval.
// A non-positive interval falls back to DefaultInterval.
func NewTickScheduler(interval time.Duration) *TickScheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &TickScheduler{Interval: interval}
}

func (s *TickScheduler) NextFrame(ctx context.Context) error {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ManualScheduler advances immediately and counts the frames it granted.
// It keeps retry loops deterministic in tests: no real timing is involved
// and the number of deferred attempts can be asserted exactly.
type ManualScheduler struct {
	mu     sync.Mutex
	frames int

	// OnFrame, if set, runs before each frame is granted. Tests use it to
	// flip state (for example, attach a node) at a chosen frame boundary.
	OnFrame func(frame int)
}

func (s *ManualScheduler) NextFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.frames++
	frame := s.frames
	hook := s.OnFrame
	s.mu.Unlock()
	if hook != nil {
		hook(frame)
	}
	return nil
}

// Frames returns how many frames have been granted so far.
func (s *ManualScheduler) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}
