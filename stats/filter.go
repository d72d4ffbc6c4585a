package stats

import (
	"strings"

	"tradelog/journal"
)

// Outcome filters trades by result.
type Outcome string

const (
	AnyOutcome Outcome = ""
	Winners    Outcome = "winners"
	Losers     Outcome = "losers"
)

// Filter selects a subset of trades. Zero-valued fields do not constrain.
// Dates are YYYY-MM-DD and compare against the exit date; Date pins a
// single day (calendar drill-down).
type Filter struct {
	Symbol    string
	Direction journal.Direction
	Outcome   Outcome
	Date      string
	StartDate string
	EndDate   string
	Tag       string
	MinPnL    *float64
	MaxPnL    *float64
}

// Apply returns the trades passing every set constraint, preserving order.
func (f Filter) Apply(trades []journal.Trade) []journal.Trade {
	var out []journal.Trade
	for _, t := range trades {
		if f.match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) match(t journal.Trade) bool {
	if f.Symbol != "" && !strings.EqualFold(t.Symbol, f.Symbol) {
		return false
	}
	if f.Direction != "" && t.Direction != f.Direction {
		return false
	}
	switch f.Outcome {
	case Winners:
		if t.PnL <= 0 {
			return false
		}
	case Losers:
		if t.PnL >= 0 {
			return false
		}
	}
	day := t.Day()
	if f.Date != "" && day != f.Date {
		return false
	}
	if f.StartDate != "" && day < f.StartDate {
		return false
	}
	if f.EndDate != "" && day > f.EndDate {
		return false
	}
	if f.Tag != "" && !hasTag(t, f.Tag) {
		return false
	}
	if f.MinPnL != nil && t.PnL < *f.MinPnL {
		return false
	}
	if f.MaxPnL != nil && t.PnL > *f.MaxPnL {
		return false
	}
	return true
}

func hasTag(t journal.Trade, tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}
