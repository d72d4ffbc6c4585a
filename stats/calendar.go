package stats

import "tradelog/journal"

// CalendarDay is one heatmap bucket: all trades that exited on a date.
type CalendarDay struct {
	Date   string  `json:"date"`
	PnL    float64 `json:"pnl"`
	Trades int     `json:"trades"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
}

// Calendar groups trades by exit date. Scratch trades (pnl exactly zero)
// count toward the trade total but neither wins nor losses.
func Calendar(trades []journal.Trade) map[string]CalendarDay {
	byDay := make(map[string]CalendarDay)
	for _, t := range trades {
		day := byDay[t.Day()]
		day.Date = t.Day()
		day.PnL += t.PnL
		day.Trades++
		if t.PnL > 0 {
			day.Wins++
		} else if t.PnL < 0 {
			day.Losses++
		}
		byDay[t.Day()] = day
	}
	return byDay
}

// Point is one step of the cumulative P&L series.
type Point struct {
	Date       string  `json:"date"`
	Cumulative float64 `json:"cumulativePnL"`
}

// CumulativePnL returns the running P&L total per trade, ordered by exit
// time ascending. The input is not mutated.
func CumulativePnL(trades []journal.Trade) []Point {
	sorted := make([]journal.Trade, len(trades))
	copy(sorted, trades)
	journal.SortByExitAsc(sorted)

	out := make([]Point, 0, len(sorted))
	var running float64
	for _, t := range sorted {
		running += t.PnL
		out = append(out, Point{
			Date:       t.ExitTime.Format(journal.TimeLayout),
			Cumulative: running,
		})
	}
	return out
}
