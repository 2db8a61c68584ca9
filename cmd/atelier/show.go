package main

import (
	"fmt"

	"github.com/atelierhq/atelier/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an artwork's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	id := args[0]
	art, ok := a.store.GetArtwork(id)
	if !ok {
		return &cli.NotFoundError{Type: "artwork", ID: id}
	}

	fmt.Printf("ID:      %s\n", art.ID)
	if art.Title != "" {
		fmt.Printf("Title:   %s\n", art.Title)
	}
	if art.Artist != "" {
		fmt.Printf("Artist:  %s\n", art.Artist)
	}
	if art.Medium != "" {
		fmt.Printf("Medium:  %s\n", art.Medium)
	}
	if art.ImageRef != "" {
		fmt.Printf("Image:   %s\n", art.ImageRef)
	}
	liked := "no"
	if art.IsLiked {
		liked = cli.Red("yes ♥")
	}
	fmt.Printf("Liked:   %s\n", liked)
	return nil
}
