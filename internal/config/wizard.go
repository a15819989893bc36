package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to surveygen! Let's configure your survey.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Survey title.
	titlePrompt := promptui.Prompt{
		Label:   "Survey title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	// 2. Viewers directory.
	viewersPrompt := promptui.Prompt{
		Label:    "Viewers directory",
		Default:  cfg.ViewersDir,
		Validate: validateDir,
	}
	if cfg.ViewersDir, err = viewersPrompt.Run(); err != nil {
		return nil, fmt.Errorf("viewers dir: %w", err)
	}

	// 3. Thumbnails directory.
	imagesPrompt := promptui.Prompt{
		Label:   "Thumbnail images directory",
		Default: cfg.ImagesDir,
	}
	if cfg.ImagesDir, err = imagesPrompt.Run(); err != nil {
		return nil, fmt.Errorf("images dir: %w", err)
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for generated pages",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 5. Order of the main viewer list.
	shufflePrompt := promptui.Select{
		Label: "Viewer order on the survey page",
		Items: []string{
			"shuffled: new random order on every page load",
			"fixed:    alphabetical folder order",
		},
	}
	orderIdx, _, err := shufflePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("order selection: %w", err)
	}
	cfg.Shuffle = orderIdx == 0

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra folder exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.ViewersDir); os.IsNotExist(err) {
		fmt.Printf("\nNote: %s does not exist yet. Add viewer folders before running surveygen index.\n", cfg.ViewersDir)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateDir(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("directory is required")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
