package cmd

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tradelog/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate performance statistics",
	RunE:  runStats,
}

var statsCalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show per-day P&L totals",
	Args:  cobra.NoArgs,
	RunE:  runCalendar,
}

var statsCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Show the cumulative P&L after each trade",
	Args:  cobra.NoArgs,
	RunE:  runCurve,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsCalendarCmd)
	statsCmd.AddCommand(statsCurveCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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
		fmt.Println("No trades in the journal")
		return nil
	}

	s := stats.Compute(trades, cfg.Report.MorningCutoff)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Trades\t%d (%d wins, %d losses)\n", len(trades), s.Wins, s.Losses)
	fmt.Fprintf(w, "Total P&L\t$%+.2f\n", s.TotalPnL)
	fmt.Fprintf(w, "Win rate\t%.1f%%\n", s.WinRate)
	fmt.Fprintf(w, "Avg trade\t$%+.2f\n", s.AvgTrade)
	fmt.Fprintf(w, "Avg win\t$%.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg loss\t$%.2f\n", s.AvgLoss)
	if math.IsInf(s.ProfitFactor, 1) {
		fmt.Fprintf(w, "Profit factor\t∞\n")
	} else {
		fmt.Fprintf(w, "Profit factor\t%.2f\n", s.ProfitFactor)
	}
	fmt.Fprintf(w, "Largest win\t$%+.2f\n", s.LargestWin)
	fmt.Fprintf(w, "Largest loss\t$%+.2f\n", s.LargestLoss)
	if s.Streak > 0 {
		fmt.Fprintf(w, "Streak\t%d %s day(s)\n", s.Streak, s.StreakType)
	}
	if s.BestDay != nil {
		fmt.Fprintf(w, "Best day\t%s ($%+.2f)\n", s.BestDay.Date, s.BestDay.PnL)
	}
	if s.WorstDay != nil {
		fmt.Fprintf(w, "Worst day\t%s ($%+.2f)\n", s.WorstDay.Date, s.WorstDay.PnL)
	}
	fmt.Fprintf(w, "Morning\t%d trades, %.1f%% win rate\n", s.MorningTrades, s.MorningWinRate)
	fmt.Fprintf(w, "Afternoon\t%d trades, %.1f%% win rate\n", s.AfternoonTrades, s.AfternoonWinRate)
	w.Flush()
	return nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
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

	cal := stats.Calendar(trades)
	if len(cal) == 0 {
		fmt.Println("No trades in the journal")
		return nil
	}

	dates := make([]string, 0, len(cal))
	for d := range cal {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tP&L\tTRADES\tWINS\tLOSSES")
	for _, d := range dates {
		day := cal[d]
		fmt.Fprintf(w, "%s\t$%+.2f\t%d\t%d\t%d\n", day.Date, day.PnL, day.Trades, day.Wins, day.Losses)
	}
	w.Flush()
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
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
		fmt.Println("No trades in the journal")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXIT TIME\tCUMULATIVE P&L")
	for _, p := range stats.CumulativePnL(trades) {
		fmt.Fprintf(w, "%s\t$%+.2f\n", p.Date, p.Cumulative)
	}
	w.Flush()
	return nil
}
