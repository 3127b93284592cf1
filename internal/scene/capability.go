package scene

// RepresentationKind names a viewer representation type.
type RepresentationKind string

const (
	RepCartoon      RepresentationKind = "cartoon"
	RepBallAndStick RepresentationKind = "ball_and_stick"
)

// ColorParams colors a representation. Opacity zero means "not specified";
// the viewer's default applies.
type ColorParams struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity,omitempty"`
}

// StructureHandle is a structure node inside an externally owned scene
// builder. All calls are declarative: nothing renders until the assembled
// scene description is submitted to the viewer.
type StructureHandle interface {
	Component(selector ComponentSelector) Component
}

// Component is a selected subset of a structure.
type Component interface {
	Representation(kind RepresentationKind) Representation
	Label(text string)
}

// Representation is one visual rendering of a component.
type Representation interface {
	Color(params ColorParams)
}
