package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tradelog/fills"
	"tradelog/instrument"
	"tradelog/journal"
	"tradelog/pkg/id"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade manually",
	Long: `Add records one closed round-trip trade without an import. P&L is
computed from the instrument table, exactly as imported trades are priced.

Example:
  tradelog add -s MNQ --direction Long -q 2 \
      --entry 21000.25 --exit 21010.25 \
      --entry-time "2026-01-05 09:30:00" --exit-time "2026-01-05 09:45:00"`,
	RunE: runAdd,
}

var (
	addSymbol    string
	addDirection string
	addQty       int
	addEntry     float64
	addExit      float64
	addEntryTime string
	addExitTime  string
	addNotes     string
	addTags      []string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addSymbol, "symbol", "s", "", "instrument symbol (required)")
	addCmd.Flags().StringVar(&addDirection, "direction", "Long", "trade direction (Long or Short)")
	addCmd.Flags().IntVarP(&addQty, "qty", "q", 1, "contracts traded")
	addCmd.Flags().Float64Var(&addEntry, "entry", 0, "entry price (required)")
	addCmd.Flags().Float64Var(&addExit, "exit", 0, "exit price (required)")
	addCmd.Flags().StringVar(&addEntryTime, "entry-time", "", "entry timestamp (required)")
	addCmd.Flags().StringVar(&addExitTime, "exit-time", "", "exit timestamp (required)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "tags (comma separated)")

	addCmd.MarkFlagRequired("symbol")
	addCmd.MarkFlagRequired("entry")
	addCmd.MarkFlagRequired("exit")
	addCmd.MarkFlagRequired("entry-time")
	addCmd.MarkFlagRequired("exit-time")
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	var direction journal.Direction
	switch strings.ToLower(addDirection) {
	case "long":
		direction = journal.Long
	case "short":
		direction = journal.Short
	default:
		return fmt.Errorf("direction must be Long or Short, got %q", addDirection)
	}
	if addQty <= 0 {
		return fmt.Errorf("qty must be positive")
	}

	entryTime, err := fills.ParseTime(addEntryTime, loc)
	if err != nil {
		return fmt.Errorf("entry-time: %w", err)
	}
	exitTime, err := fills.ParseTime(addExitTime, loc)
	if err != nil {
		return fmt.Errorf("exit-time: %w", err)
	}
	if exitTime.Before(entryTime) {
		return fmt.Errorf("exit-time precedes entry-time")
	}

	symbol := instrument.Canonicalize(addSymbol)
	meta := table.Resolve(symbol)

	priceDiff := addExit - addEntry
	if direction == journal.Short {
		priceDiff = addEntry - addExit
	}

	tags := addTags
	if tags == nil {
		tags = []string{}
	}

	trade := journal.Trade{
		ID:         id.New(),
		Symbol:     symbol,
		Direction:  direction,
		EntryPrice: addEntry,
		ExitPrice:  addExit,
		EntryTime:  entryTime,
		ExitTime:   exitTime,
		Qty:        addQty,
		PnL:        meta.PnL(priceDiff, addQty),
		PnLTicks:   meta.Ticks(priceDiff),
		Notes:      addNotes,
		Tags:       tags,
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

	merged, _ := journal.Merge(existing, []journal.Trade{trade})
	if err := store.Save(merged); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	fmt.Printf("Added %s %s trade, P&L $%.2f (%s)\n", trade.Symbol, trade.Direction, trade.PnL, trade.ID)
	return nil
}
