package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-plinko/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config file",
	Long: `Prints the built-in configuration as YAML.

Save it to ~/.plinko/configs/plinko.yaml or ./configs/plinko.yaml and edit
it to change physics, coin inventory, starting style and audio.

Example:
  plinko config > ~/.plinko/configs/plinko.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
