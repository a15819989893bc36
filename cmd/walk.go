package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/surveygen/internal/site"
	"github.com/ziadkadry99/surveygen/internal/survey"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Step through the survey in the terminal",
	Long: `Walks the survey the same way the generated page does: Main Viewer shows the
shuffled list, Test Viewer the fixed practice list, Prev/Next stop at either
end. Use --seed to reproduce a particular order.`,
	Args: cobra.NoArgs,
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().Uint64("seed", 0, "shuffle seed (0 = random order, like the page)")
	walkCmd.Flags().Bool("test", false, "start in the test viewer")
	rootCmd.AddCommand(walkCmd)
}

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	plan, err := site.NewIndexGenerator(cfg).Plan()
	if err != nil {
		return err
	}

	order := append([]string(nil), plan.MainURLs...)
	if cfg.Shuffle {
		var rng *rand.Rand
		if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
			rng = survey.NewRand(seed)
		}
		survey.Shuffle(order, rng)
	}

	nav := survey.NewNavigator(order, plan.TestURLs, plan.Captions)
	if startTest, _ := cmd.Flags().GetBool("test"); startTest {
		nav.EnterTest()
	}

	for {
		var items []string
		if nav.Screen == survey.MainScreen {
			fmt.Printf("%s: %d viewers, %d test viewers\n", cfg.Title, len(nav.Main), len(nav.Test))
			items = []string{"Main Viewer", "Test Viewer", "Quit"}
		} else {
			v := nav.Current()
			fmt.Printf("%s  [%d/%d]  %s\n", v.Label, nav.CurrentIndex+1, nav.Len(), v.URL)
			items = []string{"Next", "Prev", "Open", "Back", "Quit"}
		}

		sel := promptui.Select{Label: "Action", Items: items, HideSelected: true}
		_, action, err := sel.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading action: %w", err)
		}

		switch action {
		case "Main Viewer":
			nav.EnterMain()
		case "Test Viewer":
			nav.EnterTest()
		case "Next":
			if _, moved := nav.Next(); !moved {
				fmt.Println("Already at the last video.")
			}
		case "Prev":
			if _, moved := nav.Prev(); !moved {
				fmt.Println("Already at the first video.")
			}
		case "Open":
			if url := nav.Current().URL; url != "" {
				site.OpenBrowser(filepath.Join(cfg.OutputDir, filepath.FromSlash(url)))
			}
		case "Back":
			nav.Back()
		case "Quit":
			return nil
		}
	}
}
