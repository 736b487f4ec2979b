package cmd

import (
	"os"
	"volumizer/cmd/info"
	"volumizer/cmd/pad"
	"volumizer/cmd/run"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "volumizer",
	Short: "Pad HTML payloads with random inert markup to hide their true size.",
	Long: `volumizer appends cryptographically random filler disguised as comments,
hidden elements and data blocks, so an observer measuring traffic volume
cannot infer which page was served.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(pad.Cmd)
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(info.ConfigCmd)
	rootCmd.AddCommand(info.FormatsCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
