package viewer

import (
	"strings"

	"github.com/molembed/molembed/internal/chainplan"
	"github.com/molembed/molembed/internal/dom"
	"github.com/molembed/molembed/internal/source"
)

// Declarative attributes read from pre-rendered container markup, and the
// state attributes mirrored back for diagnostics.
const (
	AttrURL       = "data-url"
	AttrFormat    = "data-format"
	AttrLigand    = "data-ligand"
	AttrColorPlan = "data-color-plan"
	AttrControls  = "data-controls"

	AttrRendering    = "data-rendering"
	AttrRendered     = "data-rendered"
	AttrLoadedFormat = "data-loaded-format"
	AttrLoadedPath   = "data-loaded-path"
)

// containerOptions is everything parsed once from a container's attributes.
// Immutable after capture.
type containerOptions struct {
	src          source.StructureSource
	plan         chainplan.ColorPlan
	planDeclared bool
	ligand       string
	showControls bool
}

// parseContainerOptions captures the declarative attribute contract. Only a
// missing source URL is an error; everything else degrades to defaults.
func parseContainerOptions(node dom.Node) (containerOptions, error) {
	var opts containerOptions

	url, _ := node.Attr(AttrURL)
	if strings.TrimSpace(url) == "" {
		return opts, ErrMissingSource
	}
	format, _ := node.Attr(AttrFormat)
	opts.src = source.New(url, format)

	opts.ligand, _ = node.Attr(AttrLigand)
	opts.ligand = strings.TrimSpace(opts.ligand)

	if planAttr, ok := node.Attr(AttrColorPlan); ok && strings.TrimSpace(planAttr) != "" {
		opts.planDeclared = true
		opts.plan = chainplan.Parse([]byte(planAttr))
	}

	controls, _ := node.Attr(AttrControls)
	opts.showControls = strings.EqualFold(strings.TrimSpace(controls), "true")

	return opts, nil
}
