// Package ggdraw renders parsed molecule trees to PNG using a raster
// drawing context and an embedded monospace face for atom labels.
package ggdraw

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/molembed/molembed/internal/diagram"
)

const (
	fontSize    = 13.0
	bondOffset  = 2.5 // parallel offset for double/triple bond strokes
	labelRadius = 8.0 // background disc behind atom labels
)

// theme holds the per-theme drawing colors.
type theme struct {
	background color.Color
	bond       color.Color
	carbon     color.Color
}

var themes = map[diagram.Theme]theme{
	diagram.ThemeLight: {
		background: color.White,
		bond:       color.Black,
		carbon:     color.Black,
	},
	diagram.ThemeDark: {
		background: color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},
		bond:       color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff},
		carbon:     color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff},
	},
}

// elementColors follow common CPK-style conventions for heteroatom labels.
var elementColors = map[string]color.Color{
	"N":  color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
	"O":  color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff},
	"S":  color.RGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff},
	"P":  color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff},
	"F":  color.RGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff},
	"Cl": color.RGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff},
	"Br": color.RGBA{R: 0x9a, G: 0x34, B: 0x12, A: 0xff},
	"I":  color.RGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff},
}

// Drawer rasterizes molecule trees to PNG.
type Drawer struct {
	opts diagram.Options
}

// New creates a Drawer, applying dimension defaults and floors.
func New(opts diagram.Options) *Drawer {
	if opts.Width <= 0 {
		opts.Width = diagram.DefaultWidth
	}
	if opts.Width < diagram.MinWidth {
		opts.Width = diagram.MinWidth
	}
	if opts.Height <= 0 {
		opts.Height = diagram.DefaultHeight
	}
	if opts.Height < diagram.MinHeight {
		opts.Height = diagram.MinHeight
	}
	if opts.Padding <= 0 {
		opts.Padding = 12
	}
	return &Drawer{opts: opts}
}

// Draw renders the tree as PNG into w.
func (d *Drawer) Draw(tree *diagram.Tree, w io.Writer, th diagram.Theme) error {
	if tree == nil || len(tree.Atoms) == 0 {
		return fmt.Errorf("ggdraw: empty structure")
	}
	colors, ok := themes[th]
	if !ok {
		colors = themes[diagram.ThemeLight]
	}

	atoms, bonds := d.visibleAtoms(tree)
	px := d.project(atoms)

	dc := gg.NewContext(d.opts.Width, d.opts.Height)
	dc.SetColor(colors.background)
	dc.Clear()

	face, err := monoFace(fontSize)
	if err != nil {
		return fmt.Errorf("ggdraw: load font: %w", err)
	}
	dc.SetFontFace(face)

	dc.SetLineWidth(1.5)
	dc.SetColor(colors.bond)
	for _, bond := range bonds {
		d.drawBond(dc, px[bond.From], px[bond.To], bond.Order)
	}

	for i, atom := range atoms {
		d.drawAtomLabel(dc, atom, px[i], colors)
	}

	return dc.EncodePNG(w)
}

// visibleAtoms drops hydrogens (and their bonds) unless explicit hydrogens
// were requested, remapping bond indices onto the kept atoms.
func (d *Drawer) visibleAtoms(tree *diagram.Tree) ([]diagram.Atom, []diagram.Bond) {
	if d.opts.ExplicitHydrogens {
		return tree.Atoms, tree.Bonds
	}
	remap := make([]int, len(tree.Atoms))
	var atoms []diagram.Atom
	for i, atom := range tree.Atoms {
		if atom.Element == "H" {
			remap[i] = -1
			continue
		}
		remap[i] = len(atoms)
		atoms = append(atoms, atom)
	}
	var bonds []diagram.Bond
	for _, bond := range tree.Bonds {
		if bond.From < 0 || bond.From >= len(remap) || bond.To < 0 || bond.To >= len(remap) {
			continue
		}
		from, to := remap[bond.From], remap[bond.To]
		if from < 0 || to < 0 {
			continue
		}
		bonds = append(bonds, diagram.Bond{From: from, To: to, Order: bond.Order})
	}
	return atoms, bonds
}

type point struct{ x, y float64 }

// project scales layout coordinates to fit the padded canvas, preserving
// aspect ratio and centering the structure.
func (d *Drawer) project(atoms []diagram.Atom) []point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, atom := range atoms {
		minX = math.Min(minX, atom.X)
		minY = math.Min(minY, atom.Y)
		maxX = math.Max(maxX, atom.X)
		maxY = math.Max(maxY, atom.Y)
	}

	pad := float64(d.opts.Padding) + labelRadius
	availW := float64(d.opts.Width) - 2*pad
	availH := float64(d.opts.Height) - 2*pad

	spanX, spanY := maxX-minX, maxY-minY
	scale := 1.0
	if spanX > 0 || spanY > 0 {
		scale = math.Min(safeRatio(availW, spanX), safeRatio(availH, spanY))
	}

	offsetX := (float64(d.opts.Width) - spanX*scale) / 2
	offsetY := (float64(d.opts.Height) - spanY*scale) / 2

	px := make([]point, len(atoms))
	for i, atom := range atoms {
		px[i] = point{
			x: offsetX + (atom.X-minX)*scale,
			y: offsetY + (atom.Y-minY)*scale,
		}
	}
	return px
}

func safeRatio(avail, span float64) float64 {
	if span <= 0 {
		return math.Inf(1)
	}
	return avail / span
}

// drawBond strokes one bond; higher orders get parallel strokes offset
// perpendicular to the bond axis.
func (d *Drawer) drawBond(dc *gg.Context, from, to point, order int) {
	dx, dy := to.x-from.x, to.y-from.y
	length := math.Hypot(dx, dy)
	if length < 0.1 {
		return
	}
	// Unit perpendicular.
	nx, ny := -dy/length, dx/length

	offsets := []float64{0}
	switch order {
	case 2:
		offsets = []float64{-bondOffset, bondOffset}
	case 3:
		offsets = []float64{-2 * bondOffset, 0, 2 * bondOffset}
	}
	for _, off := range offsets {
		dc.DrawLine(from.x+nx*off, from.y+ny*off, to.x+nx*off, to.y+ny*off)
		dc.Stroke()
	}
}

// drawAtomLabel labels heteroatoms (and explicit hydrogens). Carbons stay
// implicit, as in conventional skeletal diagrams.
func (d *Drawer) drawAtomLabel(dc *gg.Context, atom diagram.Atom, at point, colors theme) {
	if atom.Element == "" || atom.Element == "C" {
		return
	}
	label := atom.Element
	switch {
	case atom.Charge > 0:
		label += "+"
	case atom.Charge < 0:
		label += "-"
	}

	// Blank out the bond strokes under the label.
	dc.SetColor(colors.background)
	dc.DrawCircle(at.x, at.y, labelRadius)
	dc.Fill()

	if c, ok := elementColors[atom.Element]; ok {
		dc.SetColor(c)
	} else {
		dc.SetColor(colors.carbon)
	}
	dc.DrawStringAnchored(label, at.x, at.y, 0.5, 0.5)
	dc.SetColor(colors.bond)
}

func monoFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
