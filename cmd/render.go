package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/molembed/molembed/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render structure files into a static HTML gallery",
	Long: `Scans the configured input directory for structure files and renders
each one into an HTML page with an embedded viewer. SMILES files become
grids of 2D diagrams. The result is a self-contained static site.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("input", "", "input directory (overrides config)")
	renderCmd.Flags().String("output", "", "output directory (overrides config)")
	renderCmd.Flags().String("name", "", "project name shown in the gallery")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		cfg.InputDir = input
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputDir = output
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		abs, err := filepath.Abs(cfg.InputDir)
		if err != nil {
			return fmt.Errorf("resolving input dir: %w", err)
		}
		name = filepath.Base(abs)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning %s...\n", cfg.InputDir)
	}

	gen := site.NewGalleryGenerator(cfg, name)
	pages, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("rendering gallery: %w", err)
	}

	fmt.Printf("Rendered %d pages to %s in %s\n", pages, cfg.OutputDir, time.Since(start).Round(time.Millisecond))
	return nil
}
