package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     = logrus.New()
)

// rootCmd is the base command for journeyscribe.
var rootCmd = &cobra.Command{
	Use:   "journeyscribe",
	Short: "Convert test journeys to natural-language scripts",
	Long: `journeyscribe reads already-fetched journey, execution, and environment
records (JSON files) and produces a human-readable test script, a classified
variable table, and a conversion accuracy report.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "journeyscribe.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "convert but don't write files")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setLogLevel applies the configured level unless --verbose already raised it.
func setLogLevel(level string) {
	if verbose {
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}
