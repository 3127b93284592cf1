package viewer

import (
	"context"
	"fmt"
	"log"

	"github.com/molembed/molembed/internal/chainplan"
	"github.com/molembed/molembed/internal/scene"
	"github.com/molembed/molembed/internal/source"
)

// directThemeName is the only coloring the direct path can express: a
// global entity-id theme, since per-chain plans need the scene builder.
const directThemeName = "entity-id"

// LoadStrategy orchestrates the two mutually exclusive loading paths. The
// declarative scene-description path is preferred; the direct path is the
// fallback when the extension is unavailable or fails for any reason.
type LoadStrategy struct {
	Logger *log.Logger
}

// Load attempts the scene-description path, then the direct path. Both use
// the same sniff-resolved format and binary flag. A scene-path failure is
// contained and logged, never propagated. Returns the path that loaded the
// structure and the effective format.
func (s *LoadStrategy) Load(ctx context.Context, inst Instance, src source.StructureSource, plan chainplan.ColorPlan, ligandLabel string) (LoadPath, source.Format, error) {
	format, binary := source.Resolve(src)

	if ext, ok := inst.Scenes(); ok {
		err := s.loadScene(ctx, ext, src.URL, format, plan, ligandLabel)
		if err == nil {
			return PathScene, format, nil
		}
		s.logf("viewer: scene-description load failed, falling back to direct load: %v", err)
	}

	loader, ok := inst.DirectLoader()
	if !ok {
		return "", format, ErrUnsupportedViewerCapability
	}
	opts := DirectLoadOptions{ThemeGlobalName: directThemeName}
	if err := loader.LoadStructureFromURL(ctx, src.URL, format, binary, opts); err != nil {
		return "", format, fmt.Errorf("direct structure load: %w", err)
	}
	return PathDirect, format, nil
}

// loadScene builds and submits a scene description. The external capability
// may fail or panic at any step; both are converted to an ordinary error so
// the caller can demote to the direct path.
func (s *LoadStrategy) loadScene(ctx context.Context, ext SceneExtension, url string, format source.Format, plan chainplan.ColorPlan, ligandLabel string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scene description construction: %v", r)
		}
	}()

	builder := ext.NewBuilder()
	structure := builder.Download(url).Parse(format).ModelStructure()
	scene.Planner{LigandLabel: ligandLabel}.Apply(structure, plan)

	return ext.Load(ctx, builder.State(), SceneLoadOptions{
		SanityChecks:    true,
		ReplaceExisting: false,
	})
}

func (s *LoadStrategy) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
