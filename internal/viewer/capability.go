// Package viewer drives initialization of a 3D structure viewer inside a
// host-owned output container: attachment gating, source resolution, scene
// construction, the builder-vs-direct load fallback, and per-container
// render state. The viewer engine itself is an external capability; this
// package only composes calls against it.
package viewer

import (
	"context"

	"github.com/molembed/molembed/internal/dom"
	"github.com/molembed/molembed/internal/scene"
	"github.com/molembed/molembed/internal/source"
)

// InstanceConfig enumerates the viewer's layout and viewport switches.
type InstanceConfig struct {
	LayoutIsExpanded               bool
	LayoutShowControls             bool
	LayoutShowRemoteState          bool
	LayoutShowSequence             bool
	LayoutShowLog                  bool
	LayoutShowLeftPanel            bool
	ViewportShowExpand             bool
	ViewportShowSelectionMode      bool
	ViewportShowAnimation          bool
	ViewportShowTrajectoryControls bool
	DisabledExtensions             []string
}

// ControlsConfig derives the full switch set from the single "show
// controls" flag carried on the container.
func ControlsConfig(showControls bool) InstanceConfig {
	return InstanceConfig{
		LayoutIsExpanded:               false,
		LayoutShowControls:             showControls,
		LayoutShowRemoteState:          false,
		LayoutShowSequence:             true,
		LayoutShowLog:                  false,
		LayoutShowLeftPanel:            showControls,
		ViewportShowExpand:             showControls,
		ViewportShowSelectionMode:      false,
		ViewportShowAnimation:          showControls,
		ViewportShowTrajectoryControls: showControls,
		DisabledExtensions:             []string{"volumes-and-segmentations"},
	}
}

// Factory creates viewer instances bound to a mount node.
type Factory interface {
	Create(ctx context.Context, mount dom.Node, cfg InstanceConfig) (Instance, error)
}

// Instance is a created viewer. Both loading surfaces are optional
// capabilities: availability is a discriminated result, not an error.
type Instance interface {
	// Scenes returns the declarative scene-description extension if the
	// viewer exposes one.
	Scenes() (SceneExtension, bool)
	// DirectLoader returns the lower-level "load structure from URL"
	// capability if the viewer exposes one.
	DirectLoader() (DirectLoader, bool)
	Camera() Camera
}

// Camera controls the viewer camera.
type Camera interface {
	Reset()
}

// SceneState is an assembled scene description, opaque to this package.
type SceneState any

// SceneLoadOptions controls how a scene description is submitted.
type SceneLoadOptions struct {
	SourceURL       string
	SanityChecks    bool
	ReplaceExisting bool
}

// SceneExtension is the declarative scene-description capability.
type SceneExtension interface {
	NewBuilder() SceneBuilder
	Load(ctx context.Context, state SceneState, opts SceneLoadOptions) error
}

// SceneBuilder assembles a scene description through a download, parse,
// model-structure pipeline.
type SceneBuilder interface {
	Download(url string) SceneDownload
	// State returns the assembled scene description for submission.
	State() SceneState
}

// SceneDownload is a downloaded payload awaiting parsing.
type SceneDownload interface {
	Parse(format source.Format) SceneParse
}

// SceneParse is a parsed payload awaiting structure modeling.
type SceneParse interface {
	ModelStructure() scene.StructureHandle
}

// DirectLoadOptions controls the direct load path. The per-chain color plan
// cannot be expressed here; only a global coloring theme is available.
type DirectLoadOptions struct {
	ThemeGlobalName string
}

// DirectLoader loads a raw structure and themes it in one call.
type DirectLoader interface {
	LoadStructureFromURL(ctx context.Context, url string, format source.Format, binary bool, opts DirectLoadOptions) error
}
