package commands

import (
	"fmt"
	"landrecords/lib/configutil"
	"landrecords/lib/records"
	"landrecords/lib/restyutil"
	"landrecords/lib/scrapers/landrecords"
	"landrecords/lib/telemetry"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var crawlCity *string
var crawlOutput *string
var crawlDelay *time.Duration

func init() {
	crawlCity = crawlCmd.Flags().String("city", landrecords.DefaultCity, "Name of the city to search in.")
	crawlOutput = crawlCmd.Flags().StringP("output", "o", "property-data.json", "Path to the JSON output file, rewritten after every street.")
	crawlDelay = crawlCmd.Flags().Duration("delay", landrecords.DefaultDelay, "Minimum time between parcel detail requests.")
	rootCmd.AddCommand(crawlCmd)
}

// streetsFromSource treats source as a file of street names if it is a regular
// file, otherwise as a single street name.
func streetsFromSource(source string) ([]string, error) {
	info, err := os.Stat(source)
	if err == nil && info.Mode().IsRegular() {
		return landrecords.StreetsFromFile(source)
	}
	return []string{source}, nil
}

// crawlConfig applies the flags that were set explicitly on top of the config file.
func crawlConfig(cmd *cobra.Command) (landrecords.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return cfg, err
	}
	overrides := landrecords.Config{}
	if cmd.Flags().Changed("city") {
		overrides.City = *crawlCity
	}
	err = configutil.Override(&cfg, overrides)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("delay") {
		cfg.DelayMs = int(crawlDelay.Milliseconds())
	}
	return cfg, nil
}

func newCrawler(cfg landrecords.Config) (*landrecords.Crawler, error) {
	var output restyutil.InstrumentOutput
	if *dumpHttp != "" {
		fsOutput, err := restyutil.NewFilesystemOutput(*dumpHttp)
		if err != nil {
			return nil, err
		}
		output = fsOutput
	}

	client, err := landrecords.NewClient(landrecords.ClientOptions{
		BaseUrl: cfg.BaseUrl,
		Schema:  cfg.Schema,
		Timeout: cfg.Timeout(),
		Output:  output,
	})
	if err != nil {
		return nil, err
	}
	return landrecords.NewCrawler(client, landrecords.CrawlerOptions{
		Delay: cfg.Delay(),
	}), nil
}

var crawlCmd = &cobra.Command{
	Use:   "crawl <street | file> [--city <city>] [--output <path>] [--delay <duration>]",
	Short: "Searches streets and scrapes every parcel found into a JSON file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := crawlConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		streets, err := streetsFromSource(args[0])
		if err != nil {
			return fmt.Errorf("failed to read streets: %w", err)
		}
		crawler, err := newCrawler(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		telemetry.InstrumentPerfStats(ctx, 5*time.Second)

		slog.Info("crawling", "streets", len(streets), "city", cfg.City, "output", *crawlOutput)
		start := time.Now()
		result, err := crawler.SearchStreetList(ctx, streets, cfg.City, records.NewFile(*crawlOutput))
		if len(result.Failures) > 0 {
			renderFailures(cmd.OutOrStdout(), result.Failures)
		}
		if err != nil {
			slog.Error("crawl stopped early", "completed_streets", result.Streets, "properties", len(result.Properties))
			return err
		}

		err = records.Save(*crawlOutput, result.Properties)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", *crawlOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Searched %d streets in %s\n", result.Streets, formatElapsed(time.Since(start)))
		return nil
	},
}
