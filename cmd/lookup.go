package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/surveygen/internal/ledger"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <video-id>",
	Short: "Resolve a VIDEO ID reported by a rater to its viewer folder",
	Long: `Looks up a VIDEO ID in the build ledger. IDs are alphabetical positions, so
they shift when folders are added or removed; pass --build with the
survey-build value from the page a rater saw to resolve against that build.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("video id must be an integer: %q", args[0])
		}
		buildID, _ := cmd.Flags().GetString("build")

		store, closeLedger, err := requireLedger()
		if err != nil {
			return err
		}
		defer closeLedger()

		c, err := store.Lookup(cmd.Context(), buildID, videoID)
		if errors.Is(err, ledger.ErrNotFound) {
			return fmt.Errorf("%w\nRun `surveygen builds` to list recorded builds", err)
		}
		if err != nil {
			return err
		}

		fmt.Printf("VIDEO ID %d -> %s (%s) [build %s]\n", c.VideoID, c.Folder, c.Kind, c.BuildID)
		return nil
	},
}

var buildsCmd = &cobra.Command{
	Use:   "builds [build-id]",
	Short: "List recorded survey builds, or show one build's caption table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeLedger, err := requireLedger()
		if err != nil {
			return err
		}
		defer closeLedger()

		ctx := cmd.Context()
		if len(args) == 1 {
			b, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}
			captions, err := store.Captions(ctx, b.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Build %s  %s  %s  (%d entries)\n", b.ID, b.CreatedAt.Local().Format("2006-01-02 15:04:05"), b.ViewersDir, b.EntryCount)
			for _, c := range captions {
				fmt.Printf("  %4d  %s (%s)\n", c.VideoID, c.Folder, c.Kind)
			}
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		builds, err := store.Builds(ctx, limit)
		if err != nil {
			return err
		}
		if len(builds) == 0 {
			fmt.Println("No builds recorded yet. Run `surveygen index` first.")
			return nil
		}
		for _, b := range builds {
			fmt.Printf("%s  %s  %4d entries  %s\n", b.ID, b.CreatedAt.Local().Format("2006-01-02 15:04:05"), b.EntryCount, b.ViewersDir)
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().String("build", "", "build ID (defaults to the latest build)")
	buildsCmd.Flags().Int("limit", 20, "maximum number of builds to list (0 = all)")
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(buildsCmd)
}

// requireLedger opens the ledger or explains that it is disabled.
func requireLedger() (*ledger.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, closeLedger, err := openLedger(cfg)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, fmt.Errorf("build ledger is disabled (ledger_path is empty in %s)", cfgFile)
	}
	return store, closeLedger, nil
}
