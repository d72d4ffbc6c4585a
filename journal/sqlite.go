package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists the trade collection and daily notes in SQLite. It
// implements the load/save persistence contract: Load hands the caller the
// full collection, Save replaces it wholesale inside one transaction, so a
// failed import never leaves a half-written journal behind.
type Store struct {
	db  *sql.DB
	loc *time.Location
}

// Open opens (creating if needed) a journal database. Timestamps are stored
// as text in TimeLayout and read back in loc; pass the reporting location
// used during import so day and hour bucketing stay consistent. A nil loc
// means local time.
func Open(path string, loc *time.Location) (*Store, error) {
	if loc == nil {
		loc = time.Local
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &Store{db: db, loc: loc}, nil
}

// Load returns every trade, most recent exit first.
func (s *Store) Load() ([]Trade, error) {
	rows, err := s.db.Query(`
		SELECT id, symbol, direction, entry_price, exit_price, entry_time, exit_time, qty, pnl, pnl_ticks, notes, tags
		FROM trades
		ORDER BY exit_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		var (
			t        Trade
			entryStr string
			exitStr  string
			tagsJSON string
		)
		if err := rows.Scan(
			&t.ID, &t.Symbol, &t.Direction,
			&t.EntryPrice, &t.ExitPrice,
			&entryStr, &exitStr,
			&t.Qty, &t.PnL, &t.PnLTicks,
			&t.Notes, &tagsJSON,
		); err != nil {
			return nil, err
		}
		if t.EntryTime, err = time.ParseInLocation(TimeLayout, entryStr, s.loc); err != nil {
			return nil, fmt.Errorf("trade %s: bad entry time %q", t.ID, entryStr)
		}
		if t.ExitTime, err = time.ParseInLocation(TimeLayout, exitStr, s.loc); err != nil {
			return nil, fmt.Errorf("trade %s: bad exit time %q", t.ID, exitStr)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &t.Tags); err != nil {
			return nil, fmt.Errorf("trade %s: bad tags %q", t.ID, tagsJSON)
		}
		if t.Tags == nil {
			t.Tags = []string{}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Save replaces the stored trade collection with trades. All or nothing.
func (s *Store) Save(trades []Trade) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trades
		(id, symbol, direction, entry_price, exit_price, entry_time, exit_time, qty, pnl, pnl_ticks, notes, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range trades {
		tags := t.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(
			t.ID, t.Symbol, string(t.Direction),
			t.EntryPrice, t.ExitPrice,
			t.EntryTime.Format(TimeLayout), t.ExitTime.Format(TimeLayout),
			t.Qty, t.PnL, t.PnLTicks,
			t.Notes, string(tagsJSON),
		); err != nil {
			return fmt.Errorf("save trade %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// UpdateAnnotations sets the user-owned notes and tags of one trade.
func (s *Store) UpdateAnnotations(id, notes string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`UPDATE trades SET notes = ?, tags = ? WHERE id = ?`, notes, string(tagsJSON), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}
	return nil
}

// Delete removes one trade by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}
	return nil
}

// DailyNotes returns all per-day notes keyed by date (YYYY-MM-DD).
func (s *Store) DailyNotes() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT date, note FROM daily_notes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make(map[string]string)
	for rows.Next() {
		var date, note string
		if err := rows.Scan(&date, &note); err != nil {
			return nil, err
		}
		notes[date] = note
	}
	return notes, rows.Err()
}

// SetDailyNote writes the note for one date, overwriting any previous note.
// An empty note deletes the entry.
func (s *Store) SetDailyNote(date, note string) error {
	if note == "" {
		_, err := s.db.Exec(`DELETE FROM daily_notes WHERE date = ?`, date)
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO daily_notes (date, note) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET note = excluded.note`, date, note)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
