package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/molembed/molembed/internal/dom"
	"github.com/molembed/molembed/internal/frames"
)

func TestGateAlreadyConnected(t *testing.T) {
	node := dom.NewMemoryContainer("c1", nil)
	node.SetConnected(true)
	sched := &frames.ManualScheduler{}

	gate := AttachmentGate{Scheduler: sched}
	if err := gate.Wait(context.Background(), node); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if sched.Frames() != 0 {
		t.Errorf("connected node deferred %d frames, want 0", sched.Frames())
	}
}

func TestGateWaitsAcrossFrames(t *testing.T) {
	node := dom.NewMemoryContainer("c1", nil)
	sched := &frames.ManualScheduler{OnFrame: func(frame int) {
		if frame == 3 {
			node.SetConnected(true)
		}
	}}

	gate := AttachmentGate{Scheduler: sched}
	if err := gate.Wait(context.Background(), node); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if sched.Frames() != 3 {
		t.Errorf("deferred %d frames, want 3", sched.Frames())
	}
}

func TestGateTimesOutAfterTwentyAttempts(t *testing.T) {
	node := dom.NewMemoryContainer("c1", nil)
	sched := &frames.ManualScheduler{}

	gate := AttachmentGate{Scheduler: sched}
	err := gate.Wait(context.Background(), node)
	if !errors.Is(err, ErrAttachmentTimeout) {
		t.Fatalf("err = %v, want ErrAttachmentTimeout", err)
	}
	if sched.Frames() != MaxAttachAttempts {
		t.Errorf("deferred %d frames, want exactly %d", sched.Frames(), MaxAttachAttempts)
	}
}

func TestGateConnectionOnFinalAttempt(t *testing.T) {
	node := dom.NewMemoryContainer("c1", nil)
	sched := &frames.ManualScheduler{OnFrame: func(frame int) {
		if frame == MaxAttachAttempts {
			node.SetConnected(true)
		}
	}}

	gate := AttachmentGate{Scheduler: sched}
	if err := gate.Wait(context.Background(), node); err != nil {
		t.Fatalf("connection on the last granted frame should succeed: %v", err)
	}
}

func TestGateCustomBound(t *testing.T) {
	node := dom.NewMemoryContainer("c1", nil)
	sched := &frames.ManualScheduler{}

	gate := AttachmentGate{Scheduler: sched, MaxAttempts: 3}
	if err := gate.Wait(context.Background(), node); !errors.Is(err, ErrAttachmentTimeout) {
		t.Fatalf("err = %v, want ErrAttachmentTimeout", err)
	}
	if sched.Frames() != 3 {
		t.Errorf("deferred %d frames, want 3", sched.Frames())
	}
}

func TestGateContextCanceled(t *testing.T) {
	node := dom.NewMemoryContainer("c1", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gate := AttachmentGate{Scheduler: &frames.ManualScheduler{}}
	if err := gate.Wait(ctx, node); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
