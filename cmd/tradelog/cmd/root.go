package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradelog/config"
	"tradelog/internal/logger"
	"tradelog/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A personal trading journal built from broker fill exports",
	Long: `Tradelog reconstructs round-trip trades from raw broker order-fill
exports and keeps them in a local journal.

It provides tools for:
  - Importing broker CSV exports with idempotent dedup
  - Reviewing trades, daily notes and per-tag performance
  - Win rate, profit factor, streak and time-of-day analytics
  - JSON backup export and restore`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(logLevel)
	},
}

var (
	cfgFile  string
	dbPath   string
	logLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to the journal database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the effective configuration: the file named by
// --config if given, defaults otherwise, with --db overriding the journal
// path either way.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dbPath != "" {
		cfg.Journal.DBPath = dbPath
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*journal.Store, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	s, err := journal.Open(cfg.Journal.DBPath, loc)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return s, nil
}

// confirm asks for interactive confirmation unless force is set.
func confirm(prompt string, force bool) bool {
	if force {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}
