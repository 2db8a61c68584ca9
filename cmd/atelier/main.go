// Package main is the entry point for the atelier CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// .env may override ATELIER_DIR for local setups; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "atelier - a gallery of artworks and challenge requests",
	Long: `atelier keeps the record of an interactive gallery: the artworks you
have collected and the challenge requests offered to you.

Artworks can be liked and removed; challenge requests are completed one
way, never reopened. Collections are saved as JSON in the .atelier/
data directory and survive across sessions.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("atelier version {{.Version}}\n")
}
