package main

import (
	"fmt"

	"github.com/atelierhq/atelier/internal/cli"
	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Toggle the liked flag on an artwork",
	Args:  cobra.ExactArgs(1),
	RunE:  runLike,
}

func init() {
	rootCmd.AddCommand(likeCmd)
}

func runLike(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	id := args[0]
	if _, ok := a.store.GetArtwork(id); !ok {
		// The store treats an unknown id as a logged no-op; the CLI gives
		// the user an actual error instead.
		return &cli.NotFoundError{Type: "artwork", ID: id}
	}

	a.store.ToggleLike(id)
	a.save()

	if a.store.HasLiked(id) {
		fmt.Printf("Liked %s %s\n", id, cli.Red("♥"))
	} else {
		fmt.Printf("Unliked %s\n", id)
	}
	return nil
}
