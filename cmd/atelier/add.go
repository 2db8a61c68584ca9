package main

import (
	"fmt"
	"strings"

	"github.com/atelierhq/atelier/internal/cli"
	"github.com/atelierhq/atelier/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add an artwork",
	Long: `Add an artwork to the collection.

Examples:
  atelier add sunrise-07 --title "Sunrise No. 7"
  atelier add sunrise-07 --title "Sunrise No. 7" --artist "M. Oda" --medium oil`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addTitle    string
	addArtist   string
	addImageRef string
	addMedium   string
)

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "artwork title")
	addCmd.Flags().StringVar(&addArtist, "artist", "", "artist name")
	addCmd.Flags().StringVar(&addImageRef, "image", "", "image reference")
	addCmd.Flags().StringVar(&addMedium, "medium", "", "medium (oil, ink, ...)")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])
	if id == "" {
		return &cli.ValidationError{Field: "id", Message: "must not be empty"}
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	a.store.AddArtwork(model.Artwork{
		ID:       id,
		Title:    addTitle,
		Artist:   addArtist,
		ImageRef: addImageRef,
		Medium:   addMedium,
	})
	a.save()

	fmt.Printf("Added artwork %s (%d in collection)\n", id, a.counts.Artworks)
	return nil
}
