// Package fills parses heterogeneous broker order-export rows into a
// uniform, chronologically sorted stream of executed fills.
package fills

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"tradelog/instrument"
)

// Side is the order side as reported by the broker.
type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

// Row is one raw export row keyed by column header. Unknown columns are
// carried but ignored.
type Row map[string]string

// Field returns the first non-empty value among the named columns.
func (r Row) Field(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(r[n]); v != "" {
			return v
		}
	}
	return ""
}

// Fill is a single executed order event, normalized for matching.
type Fill struct {
	Symbol string // canonical instrument code
	Side   Side
	Qty    int
	Price  float64
	Time   time.Time
}

// The two timestamp layouts broker exports use. Two-digit years are
// interpreted as 2000+YY, which is what "06" gives us here.
const (
	layoutShort = "1/2/06 15:04"
	layoutFull  = "2006-01-02 15:04:05"
)

// ParseTime parses a status timestamp in either supported layout, in the
// given reporting location.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(layoutFull, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutShort, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Normalize filters rows down to genuinely executed fills and converts them
// to Fill records sorted ascending by time across all instruments. Broker
// exports interleave instruments, so the matcher needs one combined
// wall-clock-ordered stream, not per-instrument streams.
//
// A row is eligible when its Status is "Filled" and its fill quantity is a
// positive integer; any filled order type is accepted. Rows with malformed
// price, quantity, side or timestamp fields are skipped individually and
// reported as warnings so one bad row cannot poison the batch.
func Normalize(rows []Row, loc *time.Location) ([]Fill, []string) {
	if loc == nil {
		loc = time.Local
	}

	var (
		out      []Fill
		warnings []string
	)

	for i, row := range rows {
		if row.Field("Status") != "Filled" {
			continue
		}

		qtyStr := row.Field("Fill Qty", "Qty")
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			warnings = append(warnings, fmt.Sprintf("row %d: bad fill quantity %q", i+1, qtyStr))
			continue
		}

		side := Side(row.Field("Side"))
		if side != Buy && side != Sell {
			warnings = append(warnings, fmt.Sprintf("row %d: unknown side %q", i+1, row.Field("Side")))
			continue
		}

		price, err := strconv.ParseFloat(row.Field("Avg Fill Price"), 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: bad price %q", i+1, row.Field("Avg Fill Price")))
			continue
		}

		ts, err := ParseTime(row.Field("Status Time"), loc)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		out = append(out, Fill{
			Symbol: instrument.Canonicalize(row.Field("Symbol")),
			Side:   side,
			Qty:    qty,
			Price:  price,
			Time:   ts,
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Time.Before(out[b].Time)
	})

	return out, warnings
}
