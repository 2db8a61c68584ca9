package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Replace collections from exported files",
	Long: `Replace a collection from a previously exported file.

The import is fail-soft: a missing or corrupt file loads as an empty
collection rather than failing. Each flag replaces one collection in full.

Examples:
  atelier load --artworks backup/artworks.json
  atelier load --requests backup/requests.json`,
	RunE: runLoad,
}

var (
	loadArtworksFrom string
	loadRequestsFrom string
)

func init() {
	loadCmd.Flags().StringVar(&loadArtworksFrom, "artworks", "", "path of an artworks export")
	loadCmd.Flags().StringVar(&loadRequestsFrom, "requests", "", "path of a requests export")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loadArtworksFrom == "" && loadRequestsFrom == "" {
		return fmt.Errorf("nothing to load: pass --artworks and/or --requests")
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	if loadArtworksFrom != "" {
		text, _ := a.codec.LoadFromFile(loadArtworksFrom)
		a.store.SetAllArtworks(a.codec.ImportArtworks(text))
	}
	if loadRequestsFrom != "" {
		text, _ := a.codec.LoadFromFile(loadRequestsFrom)
		a.store.SetAllRequests(a.codec.ImportRequests(text))
	}
	a.save()

	fmt.Printf("Loaded %d artworks, %d active requests\n", a.counts.Artworks, a.counts.ActiveRequests)
	return nil
}
