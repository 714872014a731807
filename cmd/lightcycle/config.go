package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in default configuration.

Redirect it to a file to customize arena size, movement cadence, the
energy model, or the AI profiles, then play with --config:

  lightcycle config > my-rules.yaml
  lightcycle play --config my-rules.yaml

A config placed at ~/.lightcycle/config.yaml is picked up automatically.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
