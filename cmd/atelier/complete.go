package main

import (
	"fmt"

	"github.com/atelierhq/atelier/internal/cli"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a challenge request completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	id := args[0]
	if !a.store.CompleteRequest(id) {
		return &cli.NotFoundError{Type: "request", ID: id}
	}
	a.save()

	fmt.Printf("Completed %s (%d still active)\n", id, a.counts.ActiveRequests)
	return nil
}
