package widgets

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/molembed/molembed/internal/diagram"
)

// Smiles view dimension defaults and floors.
const (
	DefaultSmilesWidth  = 400
	DefaultSmilesHeight = 300
	MinSmilesWidth      = 200
	MinSmilesHeight     = 150
)

// SmilesView describes one 2D diagram fragment.
type SmilesView struct {
	SMILES        string
	Title         string
	Theme         diagram.Theme
	ShowHydrogens bool
	Width         int
	Height        int

	elementID string
}

// ElementID returns the fragment's stable element id.
func (v *SmilesView) ElementID() string {
	if v.elementID == "" {
		v.elementID = newElementID("smiles")
	}
	return v.elementID
}

// HTML renders the fragment.
func (v *SmilesView) HTML() (string, error) {
	smiles := strings.TrimSpace(v.SMILES)
	width := SanitizeDimension(v.Width, DefaultSmilesWidth, MinSmilesWidth)
	height := SanitizeDimension(v.Height, DefaultSmilesHeight, MinSmilesHeight)
	theme := diagram.ParseTheme(string(v.Theme))

	colors := map[diagram.Theme]map[string]string{
		diagram.ThemeLight: {
			"background": "#ffffff",
			"border":     "#e5e7eb",
			"title":      "#374151",
			"echo":       "#6b7280",
		},
		diagram.ThemeDark: {
			"background": "#1e293b",
			"border":     "#374151",
			"title":      "#f8fafc",
			"echo":       "#94a3b8",
		},
	}[theme]

	data := map[string]any{
		"ElementID":         v.ElementID(),
		"SMILES":            smiles,
		"Title":             v.Title,
		"Theme":             string(theme),
		"ExplicitHydrogens": fmt.Sprintf("%t", v.ShowHydrogens),
		"Width":             width,
		"Height":            height,
		"Background":        template.CSS(colors["background"]),
		"Border":            template.CSS(colors["border"]),
		"TitleColor":        template.CSS(colors["title"]),
		"EchoColor":         template.CSS(colors["echo"]),
	}
	var buf bytes.Buffer
	if err := smilesTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("widgets: render smiles fragment: %w", err)
	}
	return buf.String(), nil
}

// SmilesGridView lays out several SMILES fragments in a grid.
type SmilesGridView struct {
	SMILES  []string
	Titles  []string
	Columns int
	Width   int
	Height  int
	Theme   diagram.Theme

	gridID string
}

// HTML renders the grid and all contained fragments.
func (g *SmilesGridView) HTML() (string, error) {
	if g.gridID == "" {
		g.gridID = newElementID("smiles-grid")
	}
	columns := g.Columns
	if columns < 1 {
		columns = 3
	}
	width := g.Width
	if width <= 0 {
		width = 280
	}
	height := g.Height
	if height <= 0 {
		height = 210
	}

	items := make([]template.HTML, 0, len(g.SMILES))
	for i, smiles := range g.SMILES {
		view := SmilesView{
			SMILES: smiles,
			Theme:  g.Theme,
			Width:  width,
			Height: height,
		}
		if i < len(g.Titles) {
			view.Title = g.Titles[i]
		}
		html, err := view.HTML()
		if err != nil {
			return "", err
		}
		items = append(items, template.HTML(html))
	}

	var buf bytes.Buffer
	err := smilesGridTmpl.Execute(&buf, map[string]any{
		"GridID":  g.gridID,
		"Columns": columns,
		"Items":   items,
	})
	if err != nil {
		return "", fmt.Errorf("widgets: render smiles grid: %w", err)
	}
	return buf.String(), nil
}
