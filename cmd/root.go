package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "shopassist",
	Short: "Conversational product assistant for the DigitGenius store",
	Long: `Shopassist answers store chat questions from a local product catalog,
carries matched-product context across turns, and falls back to a
generative backend and a static FAQ when the catalog has no answer.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".shopassist.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
