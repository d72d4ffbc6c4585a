// Package ingest ties the import pipeline together: raw export rows are
// normalized, matched into round trips and merged into the existing trade
// collection. The whole pass is pure value-in value-out; callers persist
// the merged collection only when the result says so, which keeps a failed
// import from touching saved state.
package ingest

import (
	"fmt"
	"io"
	"time"

	"tradelog/fills"
	"tradelog/instrument"
	"tradelog/internal/logger"
	"tradelog/journal"
	"tradelog/match"
)

// Result summarizes one import batch. Success means new trades were added
// and the merged collection should replace the stored one. A false Success
// with a populated Message is a normal outcome (nothing new, empty file),
// not a failure of the pipeline.
type Result struct {
	Success     bool   `json:"success"`
	TradesAdded int    `json:"tradesAdded"`
	SkippedRows int    `json:"skippedRows"`
	Message     string `json:"message"`
}

// Options configure an import pass. Zero values fall back to the built-in
// instrument table and local time.
type Options struct {
	Table    *instrument.Table
	Location *time.Location
}

// Rows imports a batch of raw export rows against the existing trade
// collection and returns the import summary plus the merged collection.
// When nothing was added the returned collection is the existing one,
// unchanged.
func Rows(rows []fills.Row, existing []journal.Trade, opts Options) (Result, []journal.Trade) {
	if len(rows) == 0 {
		return Result{Message: "No fills found in the file."}, existing
	}

	stream, warnings := fills.Normalize(rows, opts.Location)
	for _, w := range warnings {
		logger.L().Warn("skipped fill row", "reason", w)
	}

	matched := match.Run(stream, opts.Table)
	merged, added := journal.Merge(existing, matched)

	res := Result{
		TradesAdded: added,
		SkippedRows: len(warnings),
	}

	if added == 0 {
		res.Message = "No new trades found. These trades may already be imported."
		return res, existing
	}

	res.Success = true
	res.Message = fmt.Sprintf("Successfully imported %d new trade%s!", added, plural(added))
	if res.SkippedRows > 0 {
		res.Message += fmt.Sprintf(" (%d row%s skipped)", res.SkippedRows, plural(res.SkippedRows))
	}

	logger.L().Info("import complete",
		"fills", len(stream),
		"matched", len(matched),
		"added", added,
		"skipped", res.SkippedRows,
	)
	return res, merged
}

// CSV imports a broker CSV export read from r. Unreadable CSV is a
// recoverable condition reported through the Result; the existing
// collection comes back untouched.
func CSV(r io.Reader, existing []journal.Trade, opts Options) (Result, []journal.Trade) {
	rows, err := fills.ReadCSV(r)
	if err != nil {
		logger.L().Error("csv parse failed", "error", err)
		return Result{Message: fmt.Sprintf("Failed to process CSV file: %v", err)}, existing
	}
	return Rows(rows, existing, opts)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
