package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "inventory-api",
	Short: "Inventory management HTTP API",
	Long: `inventory-api serves the categories, stock, inventory log, supplier and
employee endpoints on top of a relational store.

Examples:
  inventory-api serve
  inventory-api serve --config config.yaml
  inventory-api check --timeout 10s
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	// serve is the default when no subcommand is given
	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
