package diagram

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/molembed/molembed/internal/dom"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"dark", ThemeDark},
		{"light", ThemeLight},
		{"", ThemeLight},
		{"neon", ThemeLight},
	}
	for _, tc := range tests {
		if got := ParseTheme(tc.in); got != tc.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOptionsFromElement(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  Options
	}{
		{
			"defaults",
			nil,
			Options{Width: DefaultWidth, Height: DefaultHeight, Padding: 12},
		},
		{
			"explicit dimensions",
			map[string]string{AttrWidth: "640", AttrHeight: "480"},
			Options{Width: 640, Height: 480, Padding: 12},
		},
		{
			"bare fallback attributes",
			map[string]string{"width": "500", "height": "400"},
			Options{Width: 500, Height: 400, Padding: 12},
		},
		{
			"clamped to floor",
			map[string]string{AttrWidth: "10", AttrHeight: "10"},
			Options{Width: MinWidth, Height: MinHeight, Padding: 12},
		},
		{
			"garbage falls back to default",
			map[string]string{AttrWidth: "wide", AttrHeight: "-5"},
			Options{Width: DefaultWidth, Height: DefaultHeight, Padding: 12},
		},
		{
			"hydrogens flag",
			map[string]string{AttrExplicitHydrogens: "True"},
			Options{Width: DefaultWidth, Height: DefaultHeight, Padding: 12, ExplicitHydrogens: true},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			node := dom.NewMemoryContainer("d1", tc.attrs)
			if got := OptionsFromElement(node); got != tc.want {
				t.Errorf("options = %+v, want %+v", got, tc.want)
			}
		})
	}
}

type stubParser struct {
	tree *Tree
	err  error

	lastSmiles string
}

func (p *stubParser) Parse(smiles string) (*Tree, error) {
	p.lastSmiles = smiles
	return p.tree, p.err
}

type stubDrawer struct {
	err error

	lastTheme Theme
	draws     int
}

func (d *stubDrawer) Draw(tree *Tree, w io.Writer, theme Theme) error {
	d.draws++
	d.lastTheme = theme
	if d.err != nil {
		return d.err
	}
	_, err := io.WriteString(w, "png-bytes")
	return err
}

func TestRenderElement(t *testing.T) {
	node := dom.NewMemoryContainer("d1", map[string]string{
		AttrSmiles: " CCO ",
		AttrTheme:  "dark",
	})
	parser := &stubParser{tree: &Tree{Atoms: []Atom{{Element: "C"}}}}
	drawer := &stubDrawer{}
	var out bytes.Buffer

	if err := RenderElement(node, parser, drawer, &out); err != nil {
		t.Fatalf("RenderElement: %v", err)
	}
	if parser.lastSmiles != "CCO" {
		t.Errorf("parsed %q, want trimmed CCO", parser.lastSmiles)
	}
	if drawer.lastTheme != ThemeDark {
		t.Errorf("theme = %q", drawer.lastTheme)
	}
	if out.String() != "png-bytes" {
		t.Errorf("output = %q", out.String())
	}
	if node.LoadingVisible() {
		t.Error("loading placeholder still visible")
	}
}

func TestRenderElementNoSmiles(t *testing.T) {
	node := dom.NewMemoryContainer("d1", nil)
	err := RenderElement(node, &stubParser{}, &stubDrawer{}, io.Discard)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := node.ErrorMessage(); got != "No structure provided" {
		t.Errorf("visible message = %q", got)
	}
}

func TestRenderElementParseFailure(t *testing.T) {
	node := dom.NewMemoryContainer("d1", map[string]string{AttrSmiles: "C(("})
	parser := &stubParser{err: errors.New("unbalanced ring closure")}
	drawer := &stubDrawer{}

	err := RenderElement(node, parser, drawer, io.Discard)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := node.ErrorMessage(); got != "Invalid SMILES: unbalanced ring closure" {
		t.Errorf("visible message = %q", got)
	}
	if drawer.draws != 0 {
		t.Error("drawer ran after a parse failure")
	}
}

func TestRenderElementDrawFailure(t *testing.T) {
	node := dom.NewMemoryContainer("d1", map[string]string{AttrSmiles: "CCO"})
	parser := &stubParser{tree: &Tree{}}
	drawer := &stubDrawer{err: errors.New("encode failed")}

	err := RenderElement(node, parser, drawer, io.Discard)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := node.ErrorMessage(); got != "Failed to render structure" {
		t.Errorf("visible message = %q", got)
	}
	if !strings.Contains(err.Error(), "d1") {
		t.Errorf("error does not name the element: %v", err)
	}
}
