package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every trade from the journal",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var clearForce bool

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
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
	if len(trades) == 0 {
		fmt.Println("Journal is already empty")
		return nil
	}

	if !confirm(fmt.Sprintf("Delete all %d trade(s)?", len(trades)), clearForce) {
		fmt.Println("Aborted")
		return nil
	}

	if err := store.Save(nil); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}
	fmt.Printf("Deleted %d trade(s)\n", len(trades))
	return nil
}
