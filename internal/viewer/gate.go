package viewer

import (
	"context"

	"github.com/molembed/molembed/internal/dom"
	"github.com/molembed/molembed/internal/frames"
)

// MaxAttachAttempts bounds how many frames the gate waits for a container
// to attach before giving up.
const MaxAttachAttempts = 20

// AttachmentGate waits for a node to be connected to a live document.
// Host pipelines may create output nodes before mounting them, and no mount
// notification exists; deferring across display-refresh boundaries is the
// only portable way to observe attachment.
type AttachmentGate struct {
	Scheduler   frames.Scheduler
	MaxAttempts int // zero means MaxAttachAttempts
}

// Wait returns once the node is connected, or ErrAttachmentTimeout after
// the bounded number of deferred attempts. Each attempt defers exactly one
// frame before re-checking.
func (g AttachmentGate) Wait(ctx context.Context, node dom.Node) error {
	maxAttempts := g.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = MaxAttachAttempts
	}
	for attempt := 0; ; attempt++ {
		if node.Connected() {
			return nil
		}
		if attempt >= maxAttempts {
			return ErrAttachmentTimeout
		}
		if err := g.Scheduler.NextFrame(ctx); err != nil {
			return err
		}
	}
}
