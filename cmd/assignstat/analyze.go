package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ukaji3/assignstat-go/pkg/assignstat"
	"github.com/ukaji3/assignstat-go/pkg/assignstat/output"
)

type analyzeFlags struct {
	outputPath  string
	pretty      bool
	summaryOnly bool
	today       string
	timezone    string
}

func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Analyse a workbook and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&flags.summaryOnly, "summary", false, "Print only the one-line summary")
	cmd.Flags().StringVar(&flags.today, "today", "", "Reference date YYYY-MM-DD (default: today in --timezone)")
	cmd.Flags().StringVar(&flags.timezone, "timezone", assignstat.DefaultTimezone, "IANA timezone for the reference date")

	return cmd
}

func runAnalyze(cmd *cobra.Command, inputPath string, flags analyzeFlags) error {
	opts := assignstat.Options{
		Timezone: flags.timezone,
		Clock:    assignstat.SystemClock{},
	}
	if flags.today != "" {
		clock, err := assignstat.DayClock(flags.today, flags.timezone)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
		opts.Clock = clock
	}

	report, err := assignstat.Analyze(inputPath, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	report.AnalysisID = uuid.NewString()

	var data []byte
	if flags.summaryOnly {
		data = []byte(report.Summary)
	} else {
		data, err = output.ToJSON(report, flags.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}

	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
