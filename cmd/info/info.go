package info

import (
	"fmt"
	"volumizer/internal/conf"
	"volumizer/internal/padding"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var confPath string

func init() {
	ConfigCmd.Flags().StringVarP(&confPath, "config", "c", "", "Path to the YAML configuration file.")
}

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective padding configuration.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := conf.LoadOrDefault(confPath)
		if err != nil {
			return err
		}
		gen, err := cfg.Padding.Generator()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(gen.Config())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var FormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available disguise formats.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range padding.AllFormats() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s %d bytes overhead\n", f, f.Overhead())
		}
	},
}
