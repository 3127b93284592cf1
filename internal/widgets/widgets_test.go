package widgets

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/molembed/molembed/internal/chainplan"
	"github.com/molembed/molembed/internal/diagram"
)

func TestSanitizeCSSColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#fff", "#fff"},
		{"#1e293b", "#1e293b"},
		{"white", "white"},
		{"rgb(255, 0, 0)", "rgb(255, 0, 0)"},
		{"rgba(0,0,0,0.5)", "rgba(0,0,0,0.5)"},
		{"", "white"},
		{"url(javascript:alert(1))", "white"},
		{"red; background: url(x)", "white"},
		{"#ggg", "white"},
	}
	for _, tc := range tests {
		if got := SanitizeCSSColor(tc.in, "white"); got != tc.want {
			t.Errorf("SanitizeCSSColor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeDimension(t *testing.T) {
	tests := []struct {
		value, def, floor, want int
	}{
		{0, 600, 100, 600},
		{-5, 600, 100, 600},
		{50, 600, 100, 100},
		{100, 600, 100, 100},
		{800, 600, 100, 800},
	}
	for _, tc := range tests {
		if got := SanitizeDimension(tc.value, tc.def, tc.floor); got != tc.want {
			t.Errorf("SanitizeDimension(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestElementIDsAreStableAndUnique(t *testing.T) {
	v := &StructureView{URL: "x.cif"}
	first := v.ElementID()
	if first != v.ElementID() {
		t.Error("element id changed between calls")
	}
	if !strings.HasPrefix(first, "structure-") {
		t.Errorf("id = %q", first)
	}
	other := &StructureView{URL: "x.cif"}
	if other.ElementID() == first {
		t.Error("two views share an element id")
	}
}

func TestStructureViewURL(t *testing.T) {
	v := &StructureView{URL: "1abc.cif", ShowControls: true}
	html, err := v.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	for _, want := range []string{
		`data-molembed-structure="1"`,
		`data-url="1abc.cif"`,
		`data-format="mmcif"`,
		`data-controls="true"`,
		"Loading structure...",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("fragment missing %q", want)
		}
	}
}

func TestStructureViewFormatFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"x.bcif", `data-format="bcif"`},
		{"x.pdb", `data-format="pdb"`},
		{"x.cif", `data-format="mmcif"`},
	}
	for _, tc := range tests {
		html, err := (&StructureView{URL: tc.url}).HTML()
		if err != nil {
			t.Fatalf("HTML(%s): %v", tc.url, err)
		}
		if !strings.Contains(html, tc.want) {
			t.Errorf("%s fragment missing %s", tc.url, tc.want)
		}
	}
}

func TestStructureViewInlinePDB(t *testing.T) {
	pdb := "ATOM      1  CA  ALA A   1      11.104  13.207   2.100\n"
	v := &StructureView{PDBData: pdb, LigandName: "HEM"}
	html, err := v.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	wantURL := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte(pdb))
	if !strings.Contains(html, wantURL) {
		t.Error("fragment does not embed the payload as a data URL")
	}
	if !strings.Contains(html, `data-format="pdb"`) || !strings.Contains(html, `data-ligand="HEM"`) {
		t.Error("fragment missing format or ligand attributes")
	}
	// The inferred plan for a protein chain lands on the fragment.
	if !strings.Contains(html, "data-color-plan=") || !strings.Contains(html, "protein") {
		t.Error("fragment missing inferred color plan")
	}
}

func TestStructureViewTextCIFDeclaredUpFront(t *testing.T) {
	v := &StructureView{BCIFData: []byte("data_1ABC\nloop_\n")}
	html, err := v.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, `data-format="mmcif"`) {
		t.Error("textual payload should be declared mmcif")
	}
	if !strings.Contains(html, "data:text/plain;base64,") {
		t.Error("textual payload should use a text MIME type")
	}
}

func TestStructureViewBinaryBCIF(t *testing.T) {
	v := &StructureView{BCIFData: []byte{0x83, 0x00, 0x01}}
	html, err := v.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, `data-format="bcif"`) {
		t.Error("binary payload should stay bcif")
	}
	if !strings.Contains(html, "data:application/octet-stream;base64,") {
		t.Error("binary payload should use the octet-stream MIME type")
	}
}

func TestStructureViewPlaceholder(t *testing.T) {
	html, err := (&StructureView{}).HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "No structure data provided") {
		t.Errorf("placeholder missing message: %s", html)
	}
	if strings.Contains(html, "data-molembed-structure") {
		t.Error("placeholder should not carry the structure contract")
	}
}

func TestStructureViewComponentsPlanWins(t *testing.T) {
	v := &StructureView{
		PDBData: "ATOM      1  CA  ALA Z   1      11.104  13.207   2.100\n",
		Components: []chainplan.Component{
			{"type": "protein", "chains": []any{"A"}},
		},
	}
	plan := v.ColorPlan()
	if len(plan.Protein) != 1 || plan.Protein[0][0] != "A" {
		t.Errorf("plan = %+v, want component metadata to win over inference", plan)
	}
}

func TestStructureViewBackgroundSanitized(t *testing.T) {
	v := &StructureView{URL: "x.cif", Background: "red; position: fixed"}
	html, err := v.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(html, "position: fixed") {
		t.Error("unsafe background value escaped into the fragment")
	}
	if !strings.Contains(html, `data-background="white"`) {
		t.Error("fallback background not applied")
	}
}

func TestSmilesView(t *testing.T) {
	v := &SmilesView{SMILES: " CCO ", Title: "Ethanol", Theme: diagram.ThemeDark, ShowHydrogens: true}
	html, err := v.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	for _, want := range []string{
		`data-molembed-smiles="1"`,
		`data-smiles="CCO"`,
		`data-theme="dark"`,
		`data-explicit-hydrogens="true"`,
		"Ethanol",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("fragment missing %q", want)
		}
	}
}

func TestSmilesViewDefaults(t *testing.T) {
	html, err := (&SmilesView{SMILES: "c1ccccc1"}).HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, `data-theme="light"`) {
		t.Error("theme did not default to light")
	}
	if !strings.Contains(html, `data-width="400"`) || !strings.Contains(html, `data-height="300"`) {
		t.Error("dimensions did not default")
	}
}

func TestSmilesGridView(t *testing.T) {
	g := &SmilesGridView{
		SMILES: []string{"CCO", "c1ccccc1", "CC(=O)O"},
		Titles: []string{"Ethanol", "Benzene"},
	}
	html, err := g.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if got := strings.Count(html, `data-molembed-smiles="1"`); got != 3 {
		t.Errorf("grid fragments = %d, want 3", got)
	}
	if !strings.Contains(html, "repeat(3, 1fr)") {
		t.Error("default column count missing")
	}
	if !strings.Contains(html, "Ethanol") || !strings.Contains(html, "Benzene") {
		t.Error("titles missing")
	}
}
