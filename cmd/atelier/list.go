package main

import (
	"fmt"
	"os"

	"github.com/atelierhq/atelier/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List artworks",
	Long: `List the artworks in the collection.

Liked artworks are marked with a heart. Use --liked to show only those.`,
	RunE: runList,
}

var listLiked bool

func init() {
	listCmd.Flags().BoolVar(&listLiked, "liked", false, "show only liked artworks")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	artworks := a.store.AllArtworks()
	table := cli.NewTable()
	table.SetMaxWidth(2, cli.DefaultMaxTitleWidth)

	shown := 0
	for _, art := range artworks {
		if listLiked && !art.IsLiked {
			continue
		}
		mark := " "
		if art.IsLiked {
			mark = cli.Red("♥")
		}
		title := art.Title
		if title == "" {
			title = cli.Gray("(untitled)")
		}
		table.AddRow(art.ID, mark, title, cli.Gray(art.Artist))
		shown++
	}

	if shown == 0 {
		fmt.Println("No artworks.")
		return nil
	}

	table.Render(os.Stdout)
	return nil
}
