package journal

import (
	"encoding/json"
	"fmt"
	"time"
)

// backupTrade is the wire form of a Trade in backup files. Timestamps are
// plain "YYYY-MM-DD HH:MM:SS" strings so backups stay readable and stable
// across timezones of the machine that wrote them.
type backupTrade struct {
	ID         string    `json:"id"`
	Symbol     string    `json:"symbol"`
	Direction  Direction `json:"direction"`
	EntryPrice float64   `json:"entryPrice"`
	ExitPrice  float64   `json:"exitPrice"`
	EntryTime  string    `json:"entryTime"`
	ExitTime   string    `json:"exitTime"`
	Qty        int       `json:"qty"`
	PnL        float64   `json:"pnl"`
	PnLTicks   float64   `json:"pnlTicks"`
	Notes      string    `json:"notes"`
	Tags       []string  `json:"tags"`
}

type backupFile struct {
	Trades     []backupTrade     `json:"trades"`
	DailyNotes map[string]string `json:"dailyNotes"`
	ExportDate string            `json:"exportDate"`
}

// Export serializes the full journal (trades plus daily notes) as an
// indented JSON backup.
func Export(trades []Trade, dailyNotes map[string]string, now time.Time) ([]byte, error) {
	bf := backupFile{
		Trades:     make([]backupTrade, 0, len(trades)),
		DailyNotes: dailyNotes,
		ExportDate: now.UTC().Format(time.RFC3339),
	}
	if bf.DailyNotes == nil {
		bf.DailyNotes = map[string]string{}
	}
	for _, t := range trades {
		tags := t.Tags
		if tags == nil {
			tags = []string{}
		}
		bf.Trades = append(bf.Trades, backupTrade{
			ID:         t.ID,
			Symbol:     t.Symbol,
			Direction:  t.Direction,
			EntryPrice: t.EntryPrice,
			ExitPrice:  t.ExitPrice,
			EntryTime:  t.EntryTime.Format(TimeLayout),
			ExitTime:   t.ExitTime.Format(TimeLayout),
			Qty:        t.Qty,
			PnL:        t.PnL,
			PnLTicks:   t.PnLTicks,
			Notes:      t.Notes,
			Tags:       tags,
		})
	}
	return json.MarshalIndent(bf, "", "  ")
}

// Restore validates a backup and merges its trades into existing. The trades
// field must be present and array-typed; anything else rejects the whole file
// and existing is returned untouched. Daily notes from the backup are
// returned for the caller to merge into the store.
func Restore(data []byte, existing []Trade, loc *time.Location) (merged []Trade, added int, dailyNotes map[string]string, err error) {
	if loc == nil {
		loc = time.Local
	}

	var probe struct {
		Trades     json.RawMessage   `json:"trades"`
		DailyNotes map[string]string `json:"dailyNotes"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return existing, 0, nil, fmt.Errorf("invalid backup file: %w", err)
	}
	if len(probe.Trades) == 0 || string(probe.Trades) == "null" {
		return existing, 0, nil, fmt.Errorf("invalid backup file: missing trades field")
	}

	var wire []backupTrade
	if err := json.Unmarshal(probe.Trades, &wire); err != nil {
		return existing, 0, nil, fmt.Errorf("invalid backup file: trades is not an array: %w", err)
	}

	fresh := make([]Trade, 0, len(wire))
	for _, bt := range wire {
		entry, err := parseBackupTime(bt.EntryTime, loc)
		if err != nil {
			return existing, 0, nil, fmt.Errorf("invalid backup file: trade %s: %w", bt.ID, err)
		}
		exit, err := parseBackupTime(bt.ExitTime, loc)
		if err != nil {
			return existing, 0, nil, fmt.Errorf("invalid backup file: trade %s: %w", bt.ID, err)
		}
		fresh = append(fresh, Trade{
			ID:         bt.ID,
			Symbol:     bt.Symbol,
			Direction:  bt.Direction,
			EntryPrice: bt.EntryPrice,
			ExitPrice:  bt.ExitPrice,
			EntryTime:  entry,
			ExitTime:   exit,
			Qty:        bt.Qty,
			PnL:        bt.PnL,
			PnLTicks:   bt.PnLTicks,
			Notes:      bt.Notes,
			Tags:       bt.Tags,
		})
	}

	merged, added = Merge(existing, fresh)
	return merged, added, probe.DailyNotes, nil
}

func parseBackupTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(TimeLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("bad timestamp %q", s)
}
