package config

import (
	"fmt"
	"path/filepath"

	"github.com/manifoldco/promptui"
)

// structureMarkers maps glob patterns to a recommended include glob for
// directories already holding structure data.
var structureMarkers = map[string]string{
	"*.cif":   "**/*.{cif,mmcif,bcif}",
	"*.mmcif": "**/*.{cif,mmcif,bcif}",
	"*.bcif":  "**/*.{cif,mmcif,bcif}",
	"*.pdb":   "**/*.pdb",
	"*.smi":   "**/*.{smi,smiles}",
}

// detectStructureFiles checks the current directory for structure files
// and suggests a matching include glob.
func detectStructureFiles() string {
	for marker, include := range structureMarkers {
		matches, _ := filepath.Glob(marker)
		if len(matches) > 0 {
			return include
		}
	}
	return "**"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .molembed.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to molembed! Let's configure your project.")
	fmt.Println()

	defaultInclude := detectStructureFiles()
	if defaultInclude != "**" {
		fmt.Printf("Detected structure files matching %s\n\n", defaultInclude)
	}

	// 1. Size preset.
	sizePrompt := promptui.Select{
		Label: "Select viewer size",
		Items: []string{
			"small  (400x300 viewers)",
			"medium (640x480 viewers)",
			"large  (960x720 viewers)",
		},
	}
	sizeIdx, _, err := sizePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("size selection: %w", err)
	}
	sizes := []SizePreset{SizeSmall, SizeMedium, SizeLarge}
	preset := GetPreset(sizes[sizeIdx])

	// 2. Diagram theme.
	themePrompt := promptui.Select{
		Label: "Select diagram theme",
		Items: []string{"light", "dark"},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	// 3. Viewer controls.
	controlsPrompt := promptui.Select{
		Label: "Show viewer control panels",
		Items: []string{"no", "yes"},
	}
	controlsIdx, _, err := controlsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("controls selection: %w", err)
	}

	// 4. Input directory.
	inputPrompt := promptui.Prompt{
		Label:   "Directory holding structure files",
		Default: ".",
	}
	inputDir, err := inputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("input dir: %w", err)
	}

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated gallery",
		Default: "gallery",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 6. Include patterns.
	includePrompt := promptui.Prompt{
		Label:   "Include patterns (comma-separated globs)",
		Default: defaultInclude,
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	include := splitAndTrim(includeStr)

	// 7. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	exclude := DefaultExcludes
	if excludeStr != "" {
		exclude = append(exclude, splitAndTrim(excludeStr)...)
	}

	cfg := DefaultConfig()
	cfg.InputDir = inputDir
	cfg.OutputDir = outputDir
	cfg.Include = include
	cfg.Exclude = exclude
	cfg.Viewer.Width = preset.ViewerWidth
	cfg.Viewer.Height = preset.ViewerHeight
	cfg.Viewer.ShowControls = controlsIdx == 1
	cfg.Diagram.Theme = Theme(themeStr)
	cfg.Diagram.Width = preset.DiagramWidth
	cfg.Diagram.Height = preset.DiagramHeight

	// Save to .molembed.yml.
	configPath := ".molembed.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
