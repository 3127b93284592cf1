// Package diagram wires 2D small-molecule diagrams into output elements.
// Parsing SMILES into a positioned molecule tree is an external capability;
// this package defines that capability's surface, the drawing surface, and
// the per-element wiring with contained failures.
package diagram

import "io"

// Theme selects the diagram color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme attribute, defaulting to light.
func ParseTheme(s string) Theme {
	if s == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Atom is one positioned atom in a parsed molecule tree. Coordinates are in
// the parser's abstract layout units; drawers scale them to pixels.
type Atom struct {
	Element string  `json:"element"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Charge  int     `json:"charge,omitempty"`
}

// Bond connects two atoms by index. Order 1, 2, or 3.
type Bond struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Order int `json:"order"`
}

// Tree is a parsed, laid-out molecule ready for drawing.
type Tree struct {
	Atoms []Atom `json:"atoms"`
	Bonds []Bond `json:"bonds"`
}

// Options configures a drawer.
type Options struct {
	Width             int
	Height            int
	Padding           int
	ExplicitHydrogens bool
}

// Parser converts a SMILES string into a positioned molecule tree.
// Implementations are external; molembed is not a molecular file parser.
type Parser interface {
	Parse(smiles string) (*Tree, error)
}

// Drawer renders a parsed tree to an image stream.
type Drawer interface {
	Draw(tree *Tree, w io.Writer, theme Theme) error
}
