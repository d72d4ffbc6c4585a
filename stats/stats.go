// Package stats computes derived analytics over a trade collection. Every
// function is pure: same trades in, same numbers out, no I/O and no hidden
// state.
package stats

import (
	"math"
	"sort"

	"tradelog/journal"
)

// DefaultMorningCutoff is the exit-hour boundary between the morning and
// afternoon buckets.
const DefaultMorningCutoff = 12

// DayPnL is one calendar day's summed P&L.
type DayPnL struct {
	Date string  `json:"date"`
	PnL  float64 `json:"pnl"`
}

// StreakType labels the trailing run of same-signed days.
type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
	StreakNone StreakType = ""
)

// Stats is the aggregate scorecard for a trade collection.
type Stats struct {
	TotalPnL     float64
	WinRate      float64 // percent
	AvgWin       float64
	AvgLoss      float64 // negative mean of losing trades
	ProfitFactor float64 // +Inf when there are wins but no losses
	LargestWin   float64
	LargestLoss  float64
	AvgTrade     float64
	Wins         int
	Losses       int

	Streak     int
	StreakType StreakType
	BestDay    *DayPnL
	WorstDay   *DayPnL

	MorningWinRate   float64
	AfternoonWinRate float64
	MorningTrades    int
	AfternoonTrades  int
}

// Compute builds the full scorecard. cutoffHour splits morning from
// afternoon by the exit timestamp's hour; pass DefaultMorningCutoff for the
// standard noon split. An empty collection yields the zero Stats value.
func Compute(trades []journal.Trade, cutoffHour int) Stats {
	if len(trades) == 0 {
		return Stats{}
	}

	var s Stats
	var grossProfit, grossLoss, sumWins, sumLosses float64

	for _, t := range trades {
		s.TotalPnL += t.PnL
		switch {
		case t.PnL > 0:
			s.Wins++
			sumWins += t.PnL
			grossProfit += t.PnL
			if t.PnL > s.LargestWin {
				s.LargestWin = t.PnL
			}
		case t.PnL < 0:
			s.Losses++
			sumLosses += t.PnL
			grossLoss += -t.PnL
			if t.PnL < s.LargestLoss {
				s.LargestLoss = t.PnL
			}
		}
	}

	s.WinRate = float64(s.Wins) / float64(len(trades)) * 100
	s.AvgTrade = s.TotalPnL / float64(len(trades))
	if s.Wins > 0 {
		s.AvgWin = sumWins / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = sumLosses / float64(s.Losses)
	}
	s.ProfitFactor = profitFactor(grossProfit, grossLoss)

	days := dailyPnL(trades)
	s.Streak, s.StreakType = streak(days)
	s.BestDay, s.WorstDay = bestWorst(days)

	var morningWins, afternoonWins int
	for _, t := range trades {
		if t.ExitTime.Hour() < cutoffHour {
			s.MorningTrades++
			if t.Win() {
				morningWins++
			}
		} else {
			s.AfternoonTrades++
			if t.Win() {
				afternoonWins++
			}
		}
	}
	if s.MorningTrades > 0 {
		s.MorningWinRate = float64(morningWins) / float64(s.MorningTrades) * 100
	}
	if s.AfternoonTrades > 0 {
		s.AfternoonWinRate = float64(afternoonWins) / float64(s.AfternoonTrades) * 100
	}

	return s
}

// profitFactor is grossProfit/grossLoss, +Inf for a loss-free profitable
// set, 0 when both sides are empty.
func profitFactor(grossProfit, grossLoss float64) float64 {
	if grossLoss > 0 {
		return grossProfit / grossLoss
	}
	if grossProfit > 0 {
		return math.Inf(1)
	}
	return 0
}

// dailyPnL sums P&L per exit date, returned oldest day first.
func dailyPnL(trades []journal.Trade) []DayPnL {
	byDay := make(map[string]float64)
	for _, t := range trades {
		byDay[t.Day()] += t.PnL
	}

	days := make([]DayPnL, 0, len(byDay))
	for date, pnl := range byDay {
		days = append(days, DayPnL{Date: date, PnL: pnl})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// streak counts the trailing run of same-signed days. The most recent day
// decides the streak type: a day at or above zero counts as a win day.
func streak(days []DayPnL) (int, StreakType) {
	if len(days) == 0 {
		return 0, StreakNone
	}

	st := StreakLoss
	if days[len(days)-1].PnL >= 0 {
		st = StreakWin
	}

	n := 0
	for i := len(days) - 1; i >= 0; i-- {
		win := days[i].PnL >= 0
		if (st == StreakWin) != win {
			break
		}
		n++
	}
	return n, st
}

func bestWorst(days []DayPnL) (best, worst *DayPnL) {
	for i := range days {
		d := days[i]
		if best == nil || d.PnL > best.PnL {
			best = &days[i]
		}
		if worst == nil || d.PnL < worst.PnL {
			worst = &days[i]
		}
	}
	return best, worst
}
