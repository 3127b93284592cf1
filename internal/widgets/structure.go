package widgets

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"github.com/molembed/molembed/internal/chainplan"
	"github.com/molembed/molembed/internal/source"
)

// Structure view dimension defaults and floor.
const (
	DefaultStructureWidth  = 600
	DefaultStructureHeight = 400
	MinStructureDimension  = 100
	DefaultBackground      = "white"
)

// StructureView describes one 3D structure viewer fragment. Exactly one of
// BCIFData, PDBData, or URL supplies the structure; inline data is embedded
// as a base64 data URL.
type StructureView struct {
	BCIFData []byte
	PDBData  string
	URL      string

	LigandName string
	// Components carry metadata used to build the color plan. When absent,
	// the plan is inferred from the structure text where possible.
	Components []chainplan.Component

	Width        int
	Height       int
	Background   string
	ShowControls bool

	elementID string
}

// ElementID returns the fragment's stable element id, generating it on
// first use.
func (v *StructureView) ElementID() string {
	if v.elementID == "" {
		v.elementID = newElementID("structure")
	}
	return v.elementID
}

// formatAndMIME resolves the declared format and payload MIME type.
// BCIF payloads that are really textual mmCIF are declared as such up
// front, sparing the bootstrap sniff.
func (v *StructureView) formatAndMIME() (source.Format, string) {
	switch {
	case v.BCIFData != nil:
		if source.LooksLikeTextCIF(v.BCIFData) {
			return source.FormatMMCIF, "text/plain"
		}
		return source.FormatBCIF, "application/octet-stream"
	case v.PDBData != "":
		return source.FormatPDB, "text/plain"
	case strings.HasSuffix(v.URL, ".bcif"):
		return source.FormatBCIF, ""
	case strings.HasSuffix(v.URL, ".pdb"):
		return source.FormatPDB, ""
	default:
		return source.FormatMMCIF, ""
	}
}

// sourceURL returns the URL the viewer will load, embedding inline data.
func (v *StructureView) sourceURL() (string, bool) {
	switch {
	case v.BCIFData != nil:
		_, mime := v.formatAndMIME()
		return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(v.BCIFData)), true
	case v.PDBData != "":
		return fmt.Sprintf("data:text/plain;base64,%s", base64.StdEncoding.EncodeToString([]byte(v.PDBData))), true
	case v.URL != "":
		return v.URL, true
	default:
		return "", false
	}
}

// ColorPlan builds the plan encoded onto the fragment: from component
// metadata when supplied, otherwise inferred from textual structure
// payloads. Plans with no groups fall through to the viewer's role-based
// defaults.
func (v *StructureView) ColorPlan() chainplan.ColorPlan {
	if len(v.Components) > 0 {
		plan := chainplan.FromComponents(v.Components)
		if !plan.IsEmpty() {
			return plan
		}
	}
	if v.BCIFData != nil && source.LooksLikeTextCIF(v.BCIFData) {
		return chainplan.InferFromMMCIF(string(v.BCIFData))
	}
	if v.PDBData != "" {
		return chainplan.InferFromPDB(v.PDBData)
	}
	return chainplan.ColorPlan{}
}

// HTML renders the fragment.
func (v *StructureView) HTML() (string, error) {
	width := SanitizeDimension(v.Width, DefaultStructureWidth, MinStructureDimension)
	height := SanitizeDimension(v.Height, DefaultStructureHeight, MinStructureDimension)
	background := SanitizeCSSColor(v.Background, DefaultBackground)

	url, ok := v.sourceURL()
	if !ok {
		var buf bytes.Buffer
		err := structurePlaceholderTmpl.Execute(&buf, map[string]any{
			"Width":  width,
			"Height": height,
		})
		return buf.String(), err
	}

	format, _ := v.formatAndMIME()
	data := map[string]any{
		"ElementID":      v.ElementID(),
		"Width":          width,
		"Height":         height,
		"Background":     template.CSS(background),
		"BackgroundAttr": background,
		// data: URLs are built here from our own encoding; network URLs come
		// from the authoring caller. Neither goes through the URL filter.
		"URL":       template.URL(url),
		"Format":    string(format),
		"Ligand":    v.LigandName,
		"Controls":  fmt.Sprintf("%t", v.ShowControls),
		"ColorPlan": v.ColorPlan().Encode(),
	}
	var buf bytes.Buffer
	if err := structureTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("widgets: render structure fragment: %w", err)
	}
	return buf.String(), nil
}
