package viewer

import (
	"sync"

	"github.com/molembed/molembed/internal/source"
)

// Phase is the render lifecycle of one container. It moves forward through
// rendering to rendered, or back to unrendered on failure so a future
// host-triggered re-invocation can retry; it never leaves rendered.
type Phase int

const (
	PhaseUnrendered Phase = iota
	PhaseRendering
	PhaseRendered
)

func (p Phase) String() string {
	switch p {
	case PhaseRendering:
		return "rendering"
	case PhaseRendered:
		return "rendered"
	default:
		return "unrendered"
	}
}

// LoadPath records which load path produced the rendered structure.
// Diagnostic only; it never affects subsequent behavior.
type LoadPath string

const (
	PathScene  LoadPath = "mvs"
	PathDirect LoadPath = "direct"
)

// RenderState is the per-container state owned by the controller.
type RenderState struct {
	Phase        Phase
	LoadedFormat source.Format
	LoadedPath   LoadPath
}

// StateArena owns RenderState per container id. Containers are looked up by
// identity here rather than through ambient markup; attributes mirrored
// onto nodes are diagnostics, not the source of truth.
type StateArena struct {
	mu     sync.Mutex
	states map[string]*RenderState
}

func NewStateArena() *StateArena {
	return &StateArena{states: make(map[string]*RenderState)}
}

// Begin atomically claims a container for rendering. It reports false when
// the container is already rendering or rendered, in which case the caller
// must do nothing. The check and the transition are one critical section,
// so a racing second invocation always observes the claim.
func (a *StateArena) Begin(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	st := a.get(id)
	if st.Phase != PhaseUnrendered {
		return false
	}
	st.Phase = PhaseRendering
	return true
}

// Fail returns a rendering container to unrendered, permitting a future
// retry. A rendered container is left untouched.
func (a *StateArena) Fail(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	st := a.get(id)
	if st.Phase == PhaseRendering {
		st.Phase = PhaseUnrendered
	}
}

// Finish marks a container rendered and records load diagnostics.
func (a *StateArena) Finish(id string, format source.Format, path LoadPath) {
	a.mu.Lock()
	defer a.mu.Unlock()
	st := a.get(id)
	st.Phase = PhaseRendered
	st.LoadedFormat = format
	st.LoadedPath = path
}

// Snapshot returns a copy of a container's state.
func (a *StateArena) Snapshot(id string) RenderState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return *a.get(id)
}

func (a *StateArena) get(id string) *RenderState {
	st, ok := a.states[id]
	if !ok {
		st = &RenderState{}
		a.states[id] = st
	}
	return st
}
