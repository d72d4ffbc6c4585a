package stats

import (
	"sort"

	"tradelog/journal"
)

// PresetTags are the labels offered by default when annotating trades.
// Purely suggestions; tag stats cover whatever labels actually appear.
var PresetTags = []string{
	"Breakout",
	"Reversal",
	"Trend",
	"Scalp",
	"Swing",
	"First Candle Rule",
	"FOMO",
	"Revenge",
	"A+ Setup",
	"Overtraded",
	"News",
}

// TagStat is the scorecard for the subset of trades carrying one tag.
type TagStat struct {
	Trades       int
	Wins         int
	Losses       int
	WinRate      float64
	TotalPnL     float64
	AvgWin       float64
	AvgLoss      float64 // absolute mean of losing trades
	ProfitFactor float64
}

// Tags computes per-tag statistics for every tag observed on the trades.
// Tags with no matching trades never appear in the result.
func Tags(trades []journal.Trade) map[string]TagStat {
	byTag := make(map[string][]journal.Trade)
	for _, t := range trades {
		for _, tag := range t.Tags {
			byTag[tag] = append(byTag[tag], t)
		}
	}

	out := make(map[string]TagStat, len(byTag))
	for tag, tagged := range byTag {
		var st TagStat
		var sumWins, sumLosses float64
		for _, t := range tagged {
			st.Trades++
			st.TotalPnL += t.PnL
			if t.PnL > 0 {
				st.Wins++
				sumWins += t.PnL
			} else if t.PnL < 0 {
				st.Losses++
				sumLosses += -t.PnL
			}
		}
		st.WinRate = float64(st.Wins) / float64(st.Trades) * 100
		if st.Wins > 0 {
			st.AvgWin = sumWins / float64(st.Wins)
		}
		if st.Losses > 0 {
			st.AvgLoss = sumLosses / float64(st.Losses)
		}
		st.ProfitFactor = profitFactor(sumWins, sumLosses)
		out[tag] = st
	}
	return out
}

// TagLabels returns the tag names in a stats map, sorted for stable output.
func TagLabels(stats map[string]TagStat) []string {
	labels := make([]string, 0, len(stats))
	for tag := range stats {
		labels = append(labels, tag)
	}
	sort.Strings(labels)
	return labels
}
