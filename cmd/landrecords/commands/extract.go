package commands

import (
	"fmt"
	"io"
	"landrecords/lib/chrono"
	"landrecords/lib/records"
	"landrecords/lib/report"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

var extractFile *string
var extractRange *int
var extractOutput *string
var extractFilter *[]string

func init() {
	extractFile = extractCmd.Flags().StringP("file", "f", "property-data.json", "Path to the file with downloaded data.")
	extractRange = extractCmd.Flags().IntP("range", "r", 30, "Number of days back to keep.")
	extractOutput = extractCmd.Flags().StringP("output", "o", "properties.tsv", "Path to the output file.")
	extractFilter = extractCmd.Flags().StringArray("filter", nil, "Only keep documents of this type, may be repeated.")
	rootCmd.AddCommand(extractCmd)
}

type extractOptions struct {
	Input  string
	Output string
	Filter report.FilterOptions
}

func extract(out io.Writer, opts extractOptions, now time.Time) error {
	props, err := records.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", opts.Input, err)
	}
	recent, err := report.FilterRecent(props, opts.Filter, now)
	if err != nil {
		return err
	}
	err = report.WriteSpreadsheet(opts.Output, recent)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}

	slog.Info(
		"wrote spreadsheet",
		"output", opts.Output,
		"properties", len(recent),
		"of", len(props),
		"window_days", opts.Filter.WindowDays,
	)
	renderTypes(out, report.DocumentTypes(recent))

	for _, s := range report.SuggestTypes(opts.Filter.Types, report.DocumentTypes(props)) {
		if s.Closest == "" {
			slog.Warn("filter matches no document type", "filter", s.Filter)
			continue
		}
		slog.Warn("filter matches no document type", "filter", s.Filter, "did_you_mean", s.Closest)
	}
	return nil
}

var extractCmd = &cobra.Command{
	Use:   "extract [-f <path>] [-r <days>] [-o <path>] [--filter <type>...]",
	Short: "Writes the recently recorded documents of a crawl to a TSV spreadsheet.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		clock, err := chrono.NewStandardClock(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("failed to load timezone: %w", err)
		}

		return extract(cmd.OutOrStdout(), extractOptions{
			Input:  *extractFile,
			Output: *extractOutput,
			Filter: report.FilterOptions{
				WindowDays: *extractRange,
				Types:      *extractFilter,
			},
		}, clock.Now())
	},
}
