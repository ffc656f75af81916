package commands

import (
	"context"
	"landrecords/lib/configutil"
	"landrecords/lib/scrapers/landrecords"
	"landrecords/lib/telemetry"
	"os"

	"github.com/spf13/cobra"
)

var verbose *bool
var configPath *string
var dumpHttp *string

var rootCmd = &cobra.Command{
	Use:   "landrecords",
	Short: "landrecords crawls county land records and reports recently recorded documents.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(os.Stderr, *verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs.")
	configPath = rootCmd.PersistentFlags().String("config", "landrecords.json5", "The config file to read, a <name>.local.json5 beside it is layered on top.")
	dumpHttp = rootCmd.PersistentFlags().String("dump-http", "", "A directory to write raw HTTP exchanges to, only used with --verbose.")
}

// readConfig loads the config file over the defaults. A missing file is only
// an error when --config was given explicitly.
func readConfig(cmd *cobra.Command) (landrecords.Config, error) {
	cfg, err := configutil.ReadConfig(*configPath, landrecords.DefaultConfig())
	if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		return cfg, nil
	}
	return cfg, err
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
