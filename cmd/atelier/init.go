package main

import (
	"fmt"

	"github.com/atelierhq/atelier/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an atelier data directory",
	Long: `Create an .atelier/ directory for storing collections.

Fails if .atelier/ already exists in the data directory.

Predefined challenge requests can be supplied in .atelierconfig.yaml
(a sibling of .atelier/) under the "requests" key.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := storage.Init(dataDir())
	if err != nil {
		return err
	}

	fmt.Printf("Initialized atelier data directory in %s\n", s.Root())
	return nil
}
