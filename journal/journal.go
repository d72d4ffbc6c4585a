// Package journal holds the persistent trade log: the Trade entity, the
// merge-on-import rules, the SQLite store and the JSON backup format.
package journal

import (
	"sort"
	"time"
)

// TimeLayout is the textual form trade timestamps take in IDs, the store
// and backups.
const TimeLayout = "2006-01-02 15:04:05"

// Direction of a round-trip trade.
type Direction string

const (
	Long  Direction = "Long"
	Short Direction = "Short"
)

// Trade is one closed round trip reconstructed from fills (or entered
// manually). Notes and Tags are user-owned: imports never touch them.
type Trade struct {
	ID         string    `json:"id"`
	Symbol     string    `json:"symbol"`
	Direction  Direction `json:"direction"`
	EntryPrice float64   `json:"entryPrice"`
	ExitPrice  float64   `json:"exitPrice"`
	EntryTime  time.Time `json:"entryTime"`
	ExitTime   time.Time `json:"exitTime"`
	Qty        int       `json:"qty"`
	PnL        float64   `json:"pnl"`
	PnLTicks   float64   `json:"pnlTicks"`
	Notes      string    `json:"notes"`
	Tags       []string  `json:"tags"`
}

// Win reports whether the trade closed profitable.
func (t Trade) Win() bool { return t.PnL > 0 }

// Day returns the calendar date of the trade's exit.
func (t Trade) Day() string { return t.ExitTime.Format("2006-01-02") }

// TradeID derives the stable identity of a matched trade from its entry and
// exit timestamps. Re-importing the same fills reproduces the same ID, which
// is what makes dedup work. Two trades on the same instrument sharing both
// timestamps collide; accepted as the de facto dedup key.
func TradeID(entry, exit time.Time) string {
	return entry.Format(TimeLayout) + "-" + exit.Format(TimeLayout)
}

// SortByExitDesc orders trades most-recently-closed first. Downstream
// consumers rely on this presentation order.
func SortByExitDesc(trades []Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].ExitTime.After(trades[j].ExitTime)
	})
}

// SortByExitAsc orders trades oldest-closed first (cumulative P&L series).
func SortByExitAsc(trades []Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].ExitTime.Before(trades[j].ExitTime)
	})
}

// Merge combines freshly matched trades into an existing set. A fresh trade
// whose ID is already present is discarded outright, so annotations on the
// existing trade survive re-imports. The result is sorted most recent exit
// first. Returns the merged set and how many trades were actually added.
//
// Merge never mutates its inputs; the merged slice is a new value, so a
// caller can atomically swap it in or throw it away.
func Merge(existing, fresh []Trade) ([]Trade, int) {
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t.ID] = true
	}

	merged := make([]Trade, 0, len(existing)+len(fresh))
	merged = append(merged, existing...)

	added := 0
	for _, t := range fresh {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		if t.Tags == nil {
			t.Tags = []string{}
		}
		merged = append(merged, t)
		added++
	}

	SortByExitDesc(merged)
	return merged, added
}
