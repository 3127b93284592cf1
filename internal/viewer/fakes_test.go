package viewer

import (
	"context"
	"sync"

	"github.com/molembed/molembed/internal/dom"
	"github.com/molembed/molembed/internal/scene"
	"github.com/molembed/molembed/internal/source"
)

// fakeInstance is a configurable viewer double. Capabilities set to nil are
// reported as absent.
type fakeInstance struct {
	scenes *fakeSceneExtension
	direct *fakeDirectLoader
	camera fakeCamera
}

func (i *fakeInstance) Scenes() (SceneExtension, bool) {
	if i.scenes == nil {
		return nil, false
	}
	return i.scenes, true
}

func (i *fakeInstance) DirectLoader() (DirectLoader, bool) {
	if i.direct == nil {
		return nil, false
	}
	return i.direct, true
}

func (i *fakeInstance) Camera() Camera { return &i.camera }

type fakeCamera struct {
	mu     sync.Mutex
	resets int
}

func (c *fakeCamera) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resets++
}

func (c *fakeCamera) Resets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resets
}

// fakeSceneExtension records the build pipeline and submits to a
// configurable Load.
type fakeSceneExtension struct {
	loadErr    error
	panicOnGet bool // panic inside the builder pipeline

	downloadedURL string
	parsedFormat  source.Format
	components    int
	loads         int
}

func (e *fakeSceneExtension) NewBuilder() SceneBuilder { return &fakeSceneBuilder{ext: e} }

func (e *fakeSceneExtension) Load(ctx context.Context, state SceneState, opts SceneLoadOptions) error {
	e.loads++
	return e.loadErr
}

type fakeSceneBuilder struct{ ext *fakeSceneExtension }

func (b *fakeSceneBuilder) Download(url string) SceneDownload {
	b.ext.downloadedURL = url
	return &fakeSceneDownload{ext: b.ext}
}

func (b *fakeSceneBuilder) State() SceneState { return "state" }

type fakeSceneDownload struct{ ext *fakeSceneExtension }

func (d *fakeSceneDownload) Parse(format source.Format) SceneParse {
	d.ext.parsedFormat = format
	return &fakeSceneParse{ext: d.ext}
}

type fakeSceneParse struct{ ext *fakeSceneExtension }

func (p *fakeSceneParse) ModelStructure() scene.StructureHandle {
	if p.ext.panicOnGet {
		panic("scene extension unavailable")
	}
	return &fakeHandle{ext: p.ext}
}

type fakeHandle struct{ ext *fakeSceneExtension }

func (h *fakeHandle) Component(selector scene.ComponentSelector) scene.Component {
	h.ext.components++
	return nopComponent{}
}

type nopComponent struct{}

func (nopComponent) Representation(kind scene.RepresentationKind) scene.Representation {
	return nopRepresentation{}
}
func (nopComponent) Label(text string) {}

type nopRepresentation struct{}

func (nopRepresentation) Color(params scene.ColorParams) {}

// fakeDirectLoader records the one-shot direct load call.
type fakeDirectLoader struct {
	err error

	calls  int
	url    string
	format source.Format
	binary bool
	opts   DirectLoadOptions
}

func (l *fakeDirectLoader) LoadStructureFromURL(ctx context.Context, url string, format source.Format, binary bool, opts DirectLoadOptions) error {
	l.calls++
	l.url = url
	l.format = format
	l.binary = binary
	l.opts = opts
	return l.err
}

// fakeFactory hands out a prepared instance, or fails.
type fakeFactory struct {
	inst *fakeInstance
	err  error

	creates  int
	lastCfg  InstanceConfig
	lastNode dom.Node
}

func (f *fakeFactory) Create(ctx context.Context, mount dom.Node, cfg InstanceConfig) (Instance, error) {
	f.creates++
	f.lastCfg = cfg
	f.lastNode = mount
	if f.err != nil {
		return nil, f.err
	}
	return f.inst, nil
}
