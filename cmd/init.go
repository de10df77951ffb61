package cmd

import (
	"github.com/spf13/cobra"

	"github.com/digitgenius/shopassist/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize shopassist configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure shopassist and generates a .shopassist.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
