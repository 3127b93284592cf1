package diagram

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/molembed/molembed/internal/dom"
)

// Diagram element attributes, following the structure-container contract.
const (
	AttrSmiles            = "data-smiles"
	AttrTheme             = "data-theme"
	AttrExplicitHydrogens = "data-explicit-hydrogens"
	AttrWidth             = "data-width"
	AttrHeight            = "data-height"
)

// Diagram dimension floors and defaults.
const (
	MinWidth      = 200
	MinHeight     = 150
	DefaultWidth  = 400
	DefaultHeight = 300
)

// OptionsFromElement reads drawer options from a diagram element.
func OptionsFromElement(node dom.Node) Options {
	hydrogens, _ := node.Attr(AttrExplicitHydrogens)
	return Options{
		Width:             dimensionAttr(node, AttrWidth, "width", DefaultWidth, MinWidth),
		Height:            dimensionAttr(node, AttrHeight, "height", DefaultHeight, MinHeight),
		Padding:           12,
		ExplicitHydrogens: strings.EqualFold(strings.TrimSpace(hydrogens), "true"),
	}
}

// RenderElement renders one diagram element: parse the SMILES attribute,
// draw the tree to out. Parse and draw failures are terminal for this
// element only; the error is surfaced on the element and returned, and
// sibling elements are unaffected.
func RenderElement(node dom.Container, parser Parser, drawer Drawer, out io.Writer) error {
	smiles, _ := node.Attr(AttrSmiles)
	smiles = strings.TrimSpace(smiles)
	if smiles == "" {
		err := fmt.Errorf("diagram: element %s has no %s attribute", node.ID(), AttrSmiles)
		node.ShowError("No structure provided")
		return err
	}

	tree, err := parser.Parse(smiles)
	if err != nil {
		node.ShowError("Invalid SMILES: " + err.Error())
		return fmt.Errorf("diagram: parse %s: %w", node.ID(), err)
	}

	themeAttr, _ := node.Attr(AttrTheme)
	if err := drawer.Draw(tree, out, ParseTheme(strings.TrimSpace(themeAttr))); err != nil {
		node.ShowError("Failed to render structure")
		return fmt.Errorf("diagram: draw %s: %w", node.ID(), err)
	}

	node.HideLoading()
	return nil
}

// dimensionAttr parses a dimension from the data attribute or its bare
// fallback, clamping to the floor.
func dimensionAttr(node dom.Node, dataName, bareName string, def, min int) int {
	raw, ok := node.Attr(dataName)
	if !ok || strings.TrimSpace(raw) == "" {
		raw, ok = node.Attr(bareName)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return def
	}
	if v < min {
		return min
	}
	return v
}
