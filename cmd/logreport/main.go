package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"maverik-copilot-be/pkg/logreport"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		report    string
		lastHours int
		file      string
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "logreport",
		Short: "Analyze maverik_backend JSON logs",
		Long: `Reads the service JSON log and prints one report:
endpoint performance, RAG communication, errors or business events.
Example: logreport --report errors --last-hours 24`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			entries, err := logreport.LoadFile(file, lastHours, time.Now())
			if err != nil {
				return err
			}
			return logreport.Render(cmd.OutOrStdout(), report, entries, lastHours)
		},
	}

	cmd.Flags().StringVar(&report, "report", logreport.ReportPerformance,
		"Report to print: "+strings.Join(logreport.Reports, ", "))
	cmd.Flags().IntVar(&lastHours, "last-hours", 0, "Only analyze the last N hours (0 = everything)")
	cmd.Flags().StringVar(&file, "file", logreport.DefaultLogFile, "Log file to analyze")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
