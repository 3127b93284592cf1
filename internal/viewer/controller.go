package viewer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/molembed/molembed/internal/dom"
	"github.com/molembed/molembed/internal/frames"
)

// User-visible failure messages. Short and generic: details go to the log.
const (
	msgNoSource        = "No structure data provided"
	msgCreateFailed    = "Failed to create viewer"
	msgStructureFailed = "Failed to load structure"
)

// Controller sequences viewer initialization for containers: at most one
// initialization per container, attachment gating, load-strategy dispatch,
// and visible loading/error state. One Controller serves a whole document;
// each container still owns its state exclusively.
type Controller struct {
	Factory   Factory
	Scheduler frames.Scheduler
	Logger    *log.Logger
	Events    *EventBus // optional

	// MaxAttachAttempts overrides the gate bound when positive.
	MaxAttachAttempts int

	states *StateArena
}

// NewController creates a controller with a fresh state arena.
func NewController(factory Factory, scheduler frames.Scheduler) *Controller {
	return &Controller{
		Factory:   factory,
		Scheduler: scheduler,
		states:    NewStateArena(),
	}
}

// States exposes the per-container state arena for diagnostics.
func (c *Controller) States() *StateArena {
	if c.states == nil {
		c.states = NewStateArena()
	}
	return c.states
}

// Init initializes the viewer for one container. Re-invoking on a container
// that is already rendering or rendered is a no-op. Any failure clears the
// rendering claim before returning, so the host may re-invoke later; no
// automatic retry happens beyond the attachment gate's own bounded loop.
func (c *Controller) Init(ctx context.Context, container dom.Container) (err error) {
	id := container.ID()
	if !c.States().Begin(id) {
		return nil
	}
	container.SetAttr(AttrRendering, "true")
	c.publish(Event{ContainerID: id, Phase: PhaseRendering.String()})

	// The external capabilities may panic; a panic must not leave the
	// container claimed forever.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("viewer initialization: %v", r)
			c.fail(container, msgStructureFailed, err)
		}
	}()

	opts, err := parseContainerOptions(container)
	if err != nil {
		c.fail(container, msgNoSource, err)
		return err
	}
	if opts.planDeclared && opts.plan.IsEmpty() {
		c.logf("viewer: %s: color plan ignored (malformed or empty)", id)
	}

	gate := AttachmentGate{Scheduler: c.Scheduler, MaxAttempts: c.MaxAttachAttempts}
	if err := gate.Wait(ctx, container); err != nil {
		if errors.Is(err, ErrAttachmentTimeout) {
			c.fail(container, msgCreateFailed, err)
		} else {
			c.fail(container, msgStructureFailed, err)
		}
		return err
	}

	inst, err := c.Factory.Create(ctx, container, ControlsConfig(opts.showControls))
	if err != nil {
		err = fmt.Errorf("create viewer: %w", err)
		c.fail(container, msgCreateFailed, err)
		return err
	}

	strategy := &LoadStrategy{Logger: c.Logger}
	path, format, err := strategy.Load(ctx, inst, opts.src, opts.plan, opts.ligand)
	if err != nil {
		c.fail(container, msgStructureFailed, err)
		return err
	}

	container.HideLoading()
	inst.Camera().Reset()

	c.States().Finish(id, format, path)
	container.SetAttr(AttrRendering, "false")
	container.SetAttr(AttrRendered, "true")
	container.SetAttr(AttrLoadedFormat, string(format))
	container.SetAttr(AttrLoadedPath, string(path))
	c.publish(Event{ContainerID: id, Phase: PhaseRendered.String(), Format: string(format), Path: string(path)})
	return nil
}

// fail clears the rendering claim, surfaces a short visible message, and
// logs the underlying cause. Failures are contained per container: the
// error is returned, never re-thrown at siblings.
func (c *Controller) fail(container dom.Container, message string, cause error) {
	id := container.ID()
	c.States().Fail(id)
	container.SetAttr(AttrRendering, "false")
	container.ShowError(message)
	c.logf("viewer: %s: %v", id, cause)
	c.publish(Event{ContainerID: id, Phase: PhaseUnrendered.String(), Message: message})
}

func (c *Controller) publish(ev Event) {
	if c.Events != nil {
		c.Events.Publish(ev)
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
