package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/surveygen/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "surveygen",
	Short: "Static page generator for VR video quality surveys",
	Long: `surveygen scans a directory of pre-rendered VR viewers and generates the
static HTML pages raters use: a shuffled survey page with per-video IDs,
and a landing page with comparison and results thumbnail grids.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
