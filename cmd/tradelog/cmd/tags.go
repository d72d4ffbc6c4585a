package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tradelog/stats"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show per-tag performance",
	Long: `Tags breaks performance down by the labels attached to trades,
one row per tag observed in the journal. Pass --presets to print the
suggested tag list instead.`,
	Args: cobra.NoArgs,
	RunE: runTags,
}

var tagsPresets bool

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsPresets, "presets", false, "print the preset tag labels")
}

func runTags(cmd *cobra.Command, args []string) error {
	if tagsPresets {
		for _, tag := range stats.PresetTags {
			fmt.Println(tag)
		}
		return nil
	}

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

	byTag := stats.Tags(trades)
	if len(byTag) == 0 {
		fmt.Println("No tagged trades in the journal")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tTRADES\tWIN RATE\tP&L\tAVG WIN\tAVG LOSS")
	for _, tag := range stats.TagLabels(byTag) {
		st := byTag[tag]
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\t$%+.2f\t$%.2f\t$%.2f\n",
			tag, st.Trades, st.WinRate, st.TotalPnL, st.AvgWin, st.AvgLoss)
	}
	w.Flush()
	return nil
}
