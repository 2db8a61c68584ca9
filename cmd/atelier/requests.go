package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/atelierhq/atelier/internal/cli"
	"github.com/spf13/cobra"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List challenge requests",
	Long: `List challenge requests.

By default only active (incomplete) requests are shown.`,
	RunE: runRequests,
}

var requestsAll bool

func init() {
	requestsCmd.Flags().BoolVar(&requestsAll, "all", false, "include completed requests")
	rootCmd.AddCommand(requestsCmd)
}

func runRequests(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	requests := a.store.ActiveRequests()
	if requestsAll {
		requests = a.store.AllRequests()
	}

	if len(requests) == 0 {
		fmt.Println("No requests.")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(2, cli.DefaultMaxTitleWidth)
	for _, r := range requests {
		status := cli.Yellow("open")
		if r.IsCompleted {
			status = cli.Green("done")
		}
		table.AddRow(r.ID, status, r.Prompt, cli.Gray(strconv.Itoa(r.Reward)))
	}
	table.Render(os.Stdout)

	fmt.Printf("\n%d active\n", a.store.ActiveRequestCount())
	return nil
}
