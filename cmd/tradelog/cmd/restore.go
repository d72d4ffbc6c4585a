package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradelog/journal"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore a JSON backup into the journal",
	Long: `Restore reads a backup produced by export and merges it into the
journal. Trades already present keep their notes and tags; daily notes
from the backup overwrite notes for the same date.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	existing, err := store.Load()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	merged, added, notes, err := journal.Restore(data, existing, loc)
	if err != nil {
		return err
	}
	if err := store.Save(merged); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	for date, note := range notes {
		if err := store.SetDailyNote(date, note); err != nil {
			return fmt.Errorf("save daily note %s: %w", date, err)
		}
	}

	fmt.Printf("Restored %d new trade(s) and %d daily note(s)\n", added, len(notes))
	return nil
}
