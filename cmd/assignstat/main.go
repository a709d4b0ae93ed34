// Package main provides the CLI entry point for assignstat-go.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "assignstat",
		Short: "Report assignment and overdue status of a spreadsheet",
		Long: `assignstat-go finds the action/status and due-date columns of the first
sheet of an Excel workbook and reports how many rows are assigned and how
many of those are overdue.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAnalyzeCmd(), newServeCmd())
	return rootCmd
}
