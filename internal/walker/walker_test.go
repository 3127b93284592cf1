package walker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sampleDir builds a temp directory with a small mix of structure files.
func sampleDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	os.WriteFile(filepath.Join(dir, "1abc.cif"), []byte("data_1ABC\nloop_\n_atom_site.id\n"), 0644)
	os.WriteFile(filepath.Join(dir, "2xyz.pdb"), []byte("HEADER    HYDROLASE\nATOM      1  N   MET A   1\n"), 0644)
	os.WriteFile(filepath.Join(dir, "ligands.smi"), []byte("CCO ethanol\nc1ccccc1 benzene\n"), 0644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a structure"), 0644)

	nested := filepath.Join(dir, "assemblies")
	os.MkdirAll(nested, 0755)
	os.WriteFile(filepath.Join(nested, "3def.mmcif"), []byte("data_3DEF\n"), 0644)

	return dir
}

func TestWalk_BasicTraversal(t *testing.T) {
	dir := sampleDir(t)

	files, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	expected := map[string]bool{
		"1abc.cif":              false,
		"2xyz.pdb":              false,
		"ligands.smi":           false,
		"assemblies/3def.mmcif": false,
	}

	for _, f := range files {
		if _, ok := expected[f.RelPath]; ok {
			expected[f.RelPath] = true
		}
		if f.RelPath == "notes.txt" {
			t.Error("notes.txt should have been skipped (no structure extension)")
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("expected file %q not found in walk results", name)
		}
	}
}

func TestWalk_FileInfoFields(t *testing.T) {
	dir := sampleDir(t)

	files, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if f.Path == "" {
			t.Error("FileInfo.Path is empty")
		}
		if f.RelPath == "" {
			t.Error("FileInfo.RelPath is empty")
		}
		if f.Size <= 0 {
			t.Errorf("FileInfo.Size for %s is %d, expected > 0", f.RelPath, f.Size)
		}
		if f.Kind == KindUnknown {
			t.Errorf("FileInfo.Kind for %s is unknown", f.RelPath)
		}
		if len(f.ContentHash) != 64 {
			t.Errorf("FileInfo.ContentHash for %s has length %d, expected 64", f.RelPath, len(f.ContentHash))
		}
	}
}

func TestWalk_IncludeFilter(t *testing.T) {
	dir := sampleDir(t)

	files, err := Walk(WalkerConfig{
		RootDir: dir,
		Include: []string{"*.pdb"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if !strings.HasSuffix(f.RelPath, ".pdb") {
			t.Errorf("include filter *.pdb let through: %s", f.RelPath)
		}
	}

	if len(files) != 1 {
		t.Errorf("expected 1 .pdb file, got %d", len(files))
	}
}

func TestWalk_ExcludeFilter(t *testing.T) {
	dir := sampleDir(t)

	files, err := Walk(WalkerConfig{
		RootDir: dir,
		Exclude: []string{"*.smi"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if strings.HasSuffix(f.RelPath, ".smi") {
			t.Errorf("exclude filter *.smi did not exclude: %s", f.RelPath)
		}
	}
}

func TestWalk_DoubleStarInclude(t *testing.T) {
	dir := sampleDir(t)

	files, err := Walk(WalkerConfig{
		RootDir: dir,
		Include: []string{"**/*.mmcif"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	foundNested := false
	for _, f := range files {
		if strings.Contains(f.RelPath, "/") {
			foundNested = true
		}
		if !strings.HasSuffix(f.RelPath, ".mmcif") {
			t.Errorf("include filter **/*.mmcif let through: %s", f.RelPath)
		}
	}

	if !foundNested {
		t.Error("expected **/*.mmcif to match nested files")
	}
}

func TestWalk_BinaryCIFReclassified(t *testing.T) {
	tmpDir := t.TempDir()

	// A .cif file whose content is binary gets reported as BinaryCIF.
	binary := make([]byte, 100)
	binary[50] = 0x00
	os.WriteFile(filepath.Join(tmpDir, "packed.cif"), binary, 0644)

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].Kind != KindBCIF {
		t.Errorf("packed.cif kind = %q, want %q", files[0].Kind, KindBCIF)
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	tmpDir := t.TempDir()

	os.WriteFile(filepath.Join(tmpDir, "small.pdb"), []byte("ATOM"), 0644)

	big := make([]byte, 200)
	for i := range big {
		big[i] = 'A'
	}
	os.WriteFile(filepath.Join(tmpDir, "big.pdb"), big, 0644)

	files, err := Walk(WalkerConfig{
		RootDir:     tmpDir,
		MaxFileSize: 100, // 100 bytes
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if f.RelPath == "big.pdb" {
			t.Error("big.pdb should have been skipped (exceeds MaxFileSize)")
		}
	}
}

func TestWalk_DefaultExcludeDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for _, dir := range []string{"node_modules", ".git", "vendor", ".molembed"} {
		dirPath := filepath.Join(tmpDir, dir)
		os.MkdirAll(dirPath, 0755)
		os.WriteFile(filepath.Join(dirPath, "hidden.cif"), []byte("data_X\n"), 0644)
	}

	os.WriteFile(filepath.Join(tmpDir, "kept.cif"), []byte("data_Y\n"), 0644)

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 1 {
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = f.RelPath
		}
		t.Errorf("expected 1 file, got %d: %v", len(files), names)
	}
}

func TestWalk_SkipsCheckpointDirs(t *testing.T) {
	tmpDir := t.TempDir()

	checkpoints := filepath.Join(tmpDir, ".ipynb_checkpoints")
	os.MkdirAll(checkpoints, 0755)
	os.WriteFile(filepath.Join(checkpoints, "1abc-checkpoint.cif"), []byte("data_1ABC\n"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "1abc.cif"), []byte("data_1ABC\n"), 0644)

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 1 || files[0].RelPath != "1abc.cif" {
		t.Errorf("notebook checkpoint copy not skipped: %v", files)
	}
}

func TestWalk_SkipsHiddenFiles(t *testing.T) {
	tmpDir := t.TempDir()

	// AppleDouble fork: structure extension, binary content.
	os.WriteFile(filepath.Join(tmpDir, "._1abc.cif"), []byte{0x00, 0x05, 0x16, 0x07}, 0644)
	os.WriteFile(filepath.Join(tmpDir, "1abc.cif"), []byte("data_1ABC\n"), 0644)

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].RelPath != "1abc.cif" || files[0].Kind != KindMMCIF {
		t.Errorf("hidden resource fork not skipped: %+v", files[0])
	}
}

func TestWalk_ContentHashConsistency(t *testing.T) {
	dir := sampleDir(t)

	files1, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	files2, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	hash1 := make(map[string]string)
	for _, f := range files1 {
		hash1[f.RelPath] = f.ContentHash
	}

	for _, f := range files2 {
		if h, ok := hash1[f.RelPath]; ok {
			if h != f.ContentHash {
				t.Errorf("content hash mismatch for %s: %s vs %s", f.RelPath, h, f.ContentHash)
			}
		}
	}
}

// --- Kind detection tests ---

func TestDetectKind(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"1abc.cif", KindMMCIF},
		{"1abc.mmcif", KindMMCIF},
		{"1ABC.CIF", KindMMCIF},
		{"1abc.bcif", KindBCIF},
		{"2xyz.pdb", KindPDB},
		{"pdb2xyz.ent", KindPDB},
		{"ligands.smi", KindSMILES},
		{"ligands.smiles", KindSMILES},
		{"notes.txt", KindUnknown},
		{"noextension", KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			got := DetectKind(tc.filename)
			if got != tc.want {
				t.Errorf("DetectKind(%q) = %q, want %q", tc.filename, got, tc.want)
			}
		})
	}
}

func TestDetectKind_WithPath(t *testing.T) {
	got := DetectKind("assemblies/nested/3def.bcif")
	if got != KindBCIF {
		t.Errorf("DetectKind with path = %q, want %q", got, KindBCIF)
	}
}

// --- Filter tests ---

func TestMatchesInclude_Empty(t *testing.T) {
	if !MatchesInclude("anything.cif", nil) {
		t.Error("empty include patterns should include everything")
	}
}

func TestMatchesInclude_Pattern(t *testing.T) {
	if !MatchesInclude("1abc.cif", []string{"*.cif"}) {
		t.Error("*.cif should match 1abc.cif")
	}
	if MatchesInclude("2xyz.pdb", []string{"*.cif"}) {
		t.Error("*.cif should not match 2xyz.pdb")
	}
}

func TestMatchesExclude_Empty(t *testing.T) {
	if MatchesExclude("anything.cif", nil) {
		t.Error("empty exclude patterns should exclude nothing")
	}
}

func TestMatchesExclude_Pattern(t *testing.T) {
	if !MatchesExclude("draft.pdb", []string{"*.pdb"}) {
		t.Error("*.pdb should match draft.pdb")
	}
	if MatchesExclude("1abc.cif", []string{"*.pdb"}) {
		t.Error("*.pdb should not match 1abc.cif")
	}
}

func TestMatchesInclude_DoubleStarPattern(t *testing.T) {
	if !MatchesInclude("assemblies/viral/capsid.cif", []string{"**/*.cif"}) {
		t.Error("**/*.cif should match assemblies/viral/capsid.cif")
	}
}
