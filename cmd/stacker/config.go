package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stacker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration stacker would run with, after applying the
search order, --difficulty and --fps.

Search order:
  1. --config <path>
  2. ~/.stacker/configs/stacker.yaml
  3. ./configs/stacker.yaml
  4. built-in defaults

Use the output as a starting point for a custom file:
  stacker config --defaults > ~/.stacker/configs/stacker.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
