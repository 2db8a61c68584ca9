package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the collections to disk",
	Long: `Write both collections to the .atelier/ data directory.

Mutating commands already save after each change; this forces a snapshot
or exports the collections to alternate files.`,
	RunE: runSave,
}

var (
	saveArtworksTo string
	saveRequestsTo string
)

func init() {
	saveCmd.Flags().StringVar(&saveArtworksTo, "artworks-to", "", "also write the artworks export to this path")
	saveCmd.Flags().StringVar(&saveRequestsTo, "requests-to", "", "also write the requests export to this path")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	a.save()
	if saveArtworksTo != "" {
		a.codec.SaveToFile(a.codec.ExportArtworks(a.store.AllArtworks()), saveArtworksTo)
	}
	if saveRequestsTo != "" {
		a.codec.SaveToFile(a.codec.ExportRequests(a.store.AllRequests()), saveRequestsTo)
	}

	fmt.Printf("Saved %d artworks, %d requests\n", a.counts.Artworks, len(a.store.AllRequests()))
	return nil
}
