package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/surveygen/internal/progress"
	"github.com/ziadkadry99/surveygen/internal/site"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Generate the landing, comparison and results pages",
	Long: `Writes index.html with links to comparison.html (folders ending in
_comparison_spatial) and results.html (folders ending in _ours). Each card
shows images/{prompt}.png, or a placeholder when the thumbnail is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		res, err := buildPages(cfg, progress.NewReporter())
		if err != nil {
			return err
		}

		counts := map[string]int{
			site.ComparisonPage: len(res.Comparison),
			site.ResultsPage:    len(res.Results),
		}
		for _, p := range res.Paths {
			if n, ok := counts[filepath.Base(p)]; ok {
				fmt.Printf("Generated %s with %d entries.\n", p, n)
			} else {
				fmt.Printf("Generated %s\n", p)
			}
		}

		if verbose {
			for _, c := range append(res.Comparison, res.Results...) {
				if c.Thumbnail == cfg.Placeholder {
					fmt.Printf("  no thumbnail for %s\n", c.Folder)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
