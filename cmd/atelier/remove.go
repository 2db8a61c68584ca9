package main

import (
	"fmt"

	"github.com/atelierhq/atelier/internal/cli"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an artwork",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	id := args[0]
	if !a.store.RemoveArtwork(id) {
		return &cli.NotFoundError{Type: "artwork", ID: id}
	}
	a.save()

	fmt.Printf("Removed artwork %s (%d remaining)\n", id, a.counts.Artworks)
	return nil
}
