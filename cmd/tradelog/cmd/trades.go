package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tradelog/journal"
	"tradelog/stats"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List trades in the journal",
	Long: `Trades lists journal entries, most recently closed first. Filters
combine; an unset filter does not constrain.

Examples:
  tradelog trades
  tradelog trades --symbol MNQ --outcome winners
  tradelog trades today
  tradelog trades day 2026-01-05`,
	RunE: runTrades,
}

var tradesTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades closed today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		filterDate = time.Now().In(loc).Format("2006-01-02")
		return runTrades(cmd, nil)
	},
}

var tradesDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := time.Parse("2006-01-02", args[0]); err != nil {
			return fmt.Errorf("date: %w", err)
		}
		filterDate = args[0]
		return runTrades(cmd, nil)
	},
}

var tradesDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade from the journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Trade deleted")
		return nil
	},
}

var (
	filterSymbol    string
	filterDirection string
	filterOutcome   string
	filterDate      string
	filterStart     string
	filterEnd       string
	filterTag       string
	filterMinPnL    float64
	filterMaxPnL    float64
)

func init() {
	rootCmd.AddCommand(tradesCmd)
	tradesCmd.AddCommand(tradesTodayCmd)
	tradesCmd.AddCommand(tradesDayCmd)
	tradesCmd.AddCommand(tradesDeleteCmd)

	tradesCmd.PersistentFlags().StringVarP(&filterSymbol, "symbol", "s", "", "filter by instrument code")
	tradesCmd.PersistentFlags().StringVar(&filterDirection, "direction", "", "filter by direction (Long or Short)")
	tradesCmd.PersistentFlags().StringVar(&filterOutcome, "outcome", "", "filter by outcome (winners or losers)")
	tradesCmd.PersistentFlags().StringVar(&filterStart, "start", "", "earliest exit date (YYYY-MM-DD)")
	tradesCmd.PersistentFlags().StringVar(&filterEnd, "end", "", "latest exit date (YYYY-MM-DD)")
	tradesCmd.PersistentFlags().StringVar(&filterTag, "tag", "", "filter by tag")
	tradesCmd.PersistentFlags().Float64Var(&filterMinPnL, "min-pnl", 0, "minimum P&L")
	tradesCmd.PersistentFlags().Float64Var(&filterMaxPnL, "max-pnl", 0, "maximum P&L")
}

func runTrades(cmd *cobra.Command, args []string) error {
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

	f := stats.Filter{
		Symbol:    filterSymbol,
		Direction: journal.Direction(filterDirection),
		Outcome:   stats.Outcome(strings.ToLower(filterOutcome)),
		Date:      filterDate,
		StartDate: filterStart,
		EndDate:   filterEnd,
		Tag:       filterTag,
	}
	if cmd.Flags().Changed("min-pnl") {
		f.MinPnL = &filterMinPnL
	}
	if cmd.Flags().Changed("max-pnl") {
		f.MaxPnL = &filterMaxPnL
	}
	selected := f.Apply(trades)

	if len(selected) == 0 {
		fmt.Println("No trades found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXIT TIME\tSYMBOL\tDIR\tQTY\tENTRY\tEXIT\tP&L\tTICKS\tTAGS")
	var total float64
	for _, t := range selected {
		total += t.PnL
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4g\t%.4g\t%+.2f\t%+.1f\t%s\n",
			t.ExitTime.Format(journal.TimeLayout),
			t.Symbol, t.Direction, t.Qty,
			t.EntryPrice, t.ExitPrice,
			t.PnL, t.PnLTicks,
			strings.Join(t.Tags, ","),
		)
	}
	w.Flush()
	fmt.Printf("\n%d trade(s), total P&L $%+.2f\n", len(selected), total)
	return nil
}
