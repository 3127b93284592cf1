package site

import (
	"bufio"
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/molembed/molembed/internal/config"
	"github.com/molembed/molembed/internal/diagram"
	"github.com/molembed/molembed/internal/progress"
	"github.com/molembed/molembed/internal/walker"
	"github.com/molembed/molembed/internal/widgets"
)

// GalleryGenerator turns a directory of structure files into a static
// HTML gallery. Each structure gets its own page with an embedded viewer;
// SMILES files become grids of 2D diagrams.
type GalleryGenerator struct {
	InputDir    string
	OutputDir   string
	ProjectName string
	Config      *config.Config
	Reporter    progress.Reporter
}

// NewGalleryGenerator creates a GalleryGenerator for the given config.
func NewGalleryGenerator(cfg *config.Config, projectName string) *GalleryGenerator {
	return &GalleryGenerator{
		InputDir:    cfg.InputDir,
		OutputDir:   cfg.OutputDir,
		ProjectName: projectName,
		Config:      cfg,
		Reporter:    progress.NewReporter(),
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title       string
	ProjectName string
	Content     template.HTML
	TreeHTML    template.HTML
	BasePath    string
}

// Generate builds the full static gallery. Returns the number of pages generated.
func (g *GalleryGenerator) Generate() (int, error) {
	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.InputDir,
		Include: g.Config.Include,
		Exclude: g.Config.Exclude,
	})
	if err != nil {
		return 0, fmt.Errorf("scanning %s: %w", g.InputDir, err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no structure files found in %s", g.InputDir)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	// Sidebar navigation tree.
	relPaths := make([]string, len(files))
	titleMap := make(map[string]string, len(files))
	for i, f := range files {
		relPaths[i] = f.RelPath
		titleMap[f.RelPath] = cleanDisplayName(filepath.Base(f.RelPath))
	}
	tree := BuildTree(relPaths, titleMap)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	md := newMarkdown()

	g.Reporter.Start(len(files))
	var entries []SearchEntry
	for i, f := range files {
		g.Reporter.Update(i+1, f.RelPath)
		entry, err := g.renderPage(md, tmpl, tree, f)
		if err != nil {
			g.Reporter.Finish()
			return 0, fmt.Errorf("rendering %s: %w", f.RelPath, err)
		}
		entries = append(entries, entry)
	}
	g.Reporter.Finish()

	if err := g.renderIndex(md, tmpl, tree, files); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}

	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	return len(files) + 1, nil
}

// newMarkdown builds the goldmark instance used for companion notes.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// renderPage writes the HTML page for a single structure file.
func (g *GalleryGenerator) renderPage(md goldmark.Markdown, tmpl *template.Template, tree *FileTree, f walker.FileInfo) (SearchEntry, error) {
	title := cleanDisplayName(filepath.Base(f.RelPath))

	var body strings.Builder
	fmt.Fprintf(&body, "<h1>%s</h1>\n", template.HTMLEscapeString(title))

	// Companion notes: a markdown file with the same basename.
	notes, summary := g.companionNotes(md, f)
	if notes != "" {
		body.WriteString(notes)
	}

	var fragment string
	var err error
	if f.Kind == walker.KindSMILES {
		fragment, err = g.smilesFragment(f)
	} else {
		fragment, err = g.structureFragment(f)
	}
	if err != nil {
		return SearchEntry{}, err
	}
	body.WriteString(fragment)

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(pagePath(f.RelPath)))
	if err := g.writePage(tmpl, tree, outPath, f.RelPath, title, body.String()); err != nil {
		return SearchEntry{}, err
	}

	return SearchEntry{
		Path:    pagePath(f.RelPath),
		Title:   title,
		Kind:    string(f.Kind),
		Summary: summary,
	}, nil
}

// structureFragment copies the structure file next to its page and embeds
// a viewer referencing it by relative URL, keeping pages small.
func (g *GalleryGenerator) structureFragment(f walker.FileInfo) (string, error) {
	name := filepath.Base(f.RelPath)
	destDir := filepath.Join(g.OutputDir, filepath.FromSlash(filepath.Dir(f.RelPath)))
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(destDir, name), data, 0o644); err != nil {
		return "", err
	}

	view := widgets.StructureView{
		URL:          name,
		Width:        g.Config.Viewer.Width,
		Height:       g.Config.Viewer.Height,
		Background:   g.Config.Viewer.Background,
		ShowControls: g.Config.Viewer.ShowControls,
	}
	return view.HTML()
}

// smilesFragment reads a SMILES file (one molecule per line, optional
// whitespace-separated name) and renders a diagram grid.
func (g *GalleryGenerator) smilesFragment(f walker.FileInfo) (string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var smiles, titles []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		smiles = append(smiles, fields[0])
		if len(fields) > 1 {
			titles = append(titles, strings.Join(fields[1:], " "))
		} else {
			titles = append(titles, "")
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	grid := widgets.SmilesGridView{
		SMILES: smiles,
		Titles: titles,
		Width:  g.Config.Diagram.Width,
		Height: g.Config.Diagram.Height,
		Theme:  diagramTheme(g.Config.Diagram.Theme),
	}
	return grid.HTML()
}

// companionNotes renders <name>.md next to the structure file, if present.
// Returns the rendered HTML and a one-line summary for the search index.
func (g *GalleryGenerator) companionNotes(md goldmark.Markdown, f walker.FileInfo) (string, string) {
	notesPath := strings.TrimSuffix(f.Path, filepath.Ext(f.Path)) + ".md"
	content, err := os.ReadFile(notesPath)
	if err != nil {
		return "", ""
	}

	var buf bytes.Buffer
	if err := md.Convert(content, &buf); err != nil {
		return "", ""
	}
	return buf.String(), firstParagraph(string(content))
}

// renderIndex writes the gallery landing page: the README intro when one
// exists, then a card for every structure.
func (g *GalleryGenerator) renderIndex(md goldmark.Markdown, tmpl *template.Template, tree *FileTree, files []walker.FileInfo) error {
	var body strings.Builder

	readme, err := os.ReadFile(filepath.Join(g.InputDir, "README.md"))
	if err == nil {
		var buf bytes.Buffer
		if err := md.Convert(readme, &buf); err == nil {
			body.WriteString(buf.String())
		}
	} else {
		fmt.Fprintf(&body, "<h1>%s</h1>\n", template.HTMLEscapeString(g.ProjectName))
	}

	body.WriteString(`<div class="card-grid">` + "\n")
	for _, f := range files {
		title := cleanDisplayName(filepath.Base(f.RelPath))
		fmt.Fprintf(&body,
			`<a class="card" href="%s"><span class="card-title">%s</span><span class="card-kind">%s</span></a>`+"\n",
			pagePath(f.RelPath), template.HTMLEscapeString(title), f.Kind)
	}
	body.WriteString("</div>\n")

	outPath := filepath.Join(g.OutputDir, "index.html")
	return g.writePage(tmpl, tree, outPath, "", g.ProjectName, body.String())
}

// writePage executes the page template into outPath.
func (g *GalleryGenerator) writePage(tmpl *template.Template, tree *FileTree, outPath, activePath, title, content string) error {
	htmlRel, err := filepath.Rel(g.OutputDir, outPath)
	if err != nil {
		return err
	}
	depth := strings.Count(filepath.ToSlash(htmlRel), "/")
	basePath := strings.Repeat("../", depth)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	data := pageData{
		Title:       title,
		ProjectName: g.ProjectName,
		Content:     template.HTML(content),
		TreeHTML:    template.HTML(tree.ToHTML(activePath, basePath)),
		BasePath:    basePath,
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// diagramTheme maps the configured theme onto the diagram renderer's.
func diagramTheme(t config.Theme) diagram.Theme {
	if t == config.ThemeDark {
		return diagram.ThemeDark
	}
	return diagram.ThemeLight
}

// firstParagraph returns the first non-heading, non-blank line of markdown.
func firstParagraph(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
