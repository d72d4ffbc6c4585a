package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tradelog/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the journal to a JSON backup",
	Long: `Export writes the full journal, trades and daily notes, as a JSON
backup. With no argument the backup goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	trades, err := store.Load()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	notes, err := store.DailyNotes()
	if err != nil {
		return err
	}

	data, err := journal.Export(trades, notes, time.Now())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	fmt.Printf("Exported %d trade(s) and %d note(s) to %s\n", len(trades), len(notes), args[0])
	return nil
}
