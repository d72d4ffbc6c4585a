package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradelog/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import <export.csv>",
	Short: "Import a broker fill export",
	Long: `Import reads a broker order export (CSV with a header row), reconstructs
closed round-trip trades from the filled orders and merges them into the
journal. Re-importing the same file is safe: trades already present are
left untouched, including their notes and tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	existing, err := store.Load()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	res, merged := ingest.CSV(f, existing, ingest.Options{Table: table, Location: loc})
	if res.Success {
		if err := store.Save(merged); err != nil {
			return fmt.Errorf("save journal: %w", err)
		}
	}

	fmt.Println(res.Message)
	return nil
}
