package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/surveygen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize surveygen configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the survey and writes a .surveygen.yml file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
