package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/surveygen/internal/progress"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Generate the shuffled survey page",
	Long: `Scans the viewers directory and writes index.html: a survey page that
shows every viewer in a random order with Prev/Next navigation, labelled by
a VIDEO ID taken from the alphabetical position of its folder.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		res, err := buildIndex(cmd.Context(), cfg, progress.NewReporter())
		if err != nil {
			return err
		}

		if verbose {
			for _, e := range res.Entries {
				fmt.Printf("  %4d  %s (%s)\n", e.ID, e.Name, e.Kind)
			}
		}
		fmt.Printf("Generated %s with %d entries.\n", res.Path, len(res.Entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
