package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note [YYYY-MM-DD] [text]",
	Short: "Read or write a daily journal note",
	Long: `Note manages the free-form note attached to a calendar day.

With no arguments it lists all daily notes. With a date it prints that
day's note. With a date and text it sets the note; empty text removes
it.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runNote,
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

func runNote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		notes, err := store.DailyNotes()
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println("No daily notes")
			return nil
		}
		dates := make([]string, 0, len(notes))
		for d := range notes {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			fmt.Printf("%s: %s\n", d, notes[d])
		}
		return nil
	}

	date := args[0]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("date: %w", err)
	}

	if len(args) == 1 {
		notes, err := store.DailyNotes()
		if err != nil {
			return err
		}
		note, ok := notes[date]
		if !ok {
			fmt.Printf("No note for %s\n", date)
			return nil
		}
		fmt.Println(note)
		return nil
	}

	if err := store.SetDailyNote(date, args[1]); err != nil {
		return err
	}
	if args[1] == "" {
		fmt.Printf("Note for %s removed\n", date)
	} else {
		fmt.Printf("Note for %s saved\n", date)
	}
	return nil
}
