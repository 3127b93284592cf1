package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molembed/molembed/internal/diagram"
	"github.com/molembed/molembed/internal/walker"
	"github.com/molembed/molembed/internal/widgets"
)

var exportCmd = &cobra.Command{
	Use:   "export <structure-file>",
	Short: "Export a single structure as a self-contained HTML fragment",
	Long: `Reads one structure file and writes an HTML fragment with the data
embedded inline, suitable for pasting into notebooks or web pages.
SMILES files are exported as diagram grids.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "write the fragment to a file instead of stdout")
	exportCmd.Flags().String("ligand", "", "ligand name to label in the viewer")
	exportCmd.Flags().Bool("controls", false, "show viewer control panels")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	kind := walker.DetectKind(path)
	if kind == walker.KindUnknown {
		return fmt.Errorf("%s: not a recognized structure file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ligand, _ := cmd.Flags().GetString("ligand")
	controls, _ := cmd.Flags().GetBool("controls")

	var html string
	switch kind {
	case walker.KindSMILES:
		html, err = exportSmilesGrid(data, cfg.Diagram.Width, cfg.Diagram.Height, string(cfg.Diagram.Theme))
	case walker.KindPDB:
		view := widgets.StructureView{
			PDBData:      string(data),
			LigandName:   ligand,
			Width:        cfg.Viewer.Width,
			Height:       cfg.Viewer.Height,
			Background:   cfg.Viewer.Background,
			ShowControls: controls,
		}
		html, err = view.HTML()
	default:
		view := widgets.StructureView{
			BCIFData:     data,
			LigandName:   ligand,
			Width:        cfg.Viewer.Width,
			Height:       cfg.Viewer.Height,
			Background:   cfg.Viewer.Background,
			ShowControls: controls,
		}
		html, err = view.HTML()
	}
	if err != nil {
		return fmt.Errorf("rendering fragment: %w", err)
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "Fragment written to %s\n", out)
		return nil
	}

	fmt.Println(html)
	return nil
}

// exportSmilesGrid parses SMILES lines and renders a diagram grid fragment.
func exportSmilesGrid(data []byte, width, height int, theme string) (string, error) {
	var smiles, titles []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
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
		Width:  width,
		Height: height,
		Theme:  diagram.ParseTheme(theme),
	}
	return grid.HTML()
}
