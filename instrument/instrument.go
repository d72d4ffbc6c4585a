// Package instrument resolves raw broker symbol strings to canonical
// instrument codes and per-instrument contract economics (value per point
// or per pip, minimum price increment).
package instrument

import (
	"regexp"
	"sort"
	"strings"
)

// PipScale converts a quoted forex price difference into pips. Pip-scaled
// instruments multiply price differences by this factor before applying the
// per-pip value; point instruments apply the per-point value directly. The
// dividing line is membership in the currency-pair family (Meta.Pip), never
// a price-magnitude guess.
const PipScale = 10_000

// Meta describes one tradeable contract.
type Meta struct {
	Code     string  `yaml:"code" json:"code"`
	Name     string  `yaml:"name,omitempty" json:"name,omitempty"`
	Value    float64 `yaml:"value" json:"value"`         // dollars per point, or per pip when Pip is set
	TickSize float64 `yaml:"tick_size" json:"tick_size"` // minimum price increment
	Pip      bool    `yaml:"pip,omitempty" json:"pip,omitempty"`
}

// PnL converts a raw price difference (already signed for direction) into an
// account-currency amount for qty contracts.
func (m Meta) PnL(priceDiff float64, qty int) float64 {
	scale := 1.0
	if m.Pip {
		scale = PipScale
	}
	return priceDiff * scale * m.Value * float64(qty)
}

// Ticks expresses a price difference in ticks (pips for forex contracts).
func (m Meta) Ticks(priceDiff float64) float64 {
	if m.Pip {
		return priceDiff * PipScale
	}
	if m.TickSize <= 0 {
		return priceDiff
	}
	return priceDiff / m.TickSize
}

var contractMonth = regexp.MustCompile(`[A-Z]\d{2}$`)

// Canonicalize reduces a raw broker symbol to its root instrument code:
// the final dot-separated segment, upper-cased, with a trailing contract
// month code (H26, G26, ...) stripped. The month code is only stripped when
// the symbol is longer than three characters, so short roots that happen to
// end in letter-digit-digit survive intact.
//
//	"F.US.MNQH26"  -> "MNQ"
//	"F.US.M1OZJ26" -> "M1OZ"
func Canonicalize(raw string) string {
	sym := strings.ToUpper(strings.TrimSpace(raw))
	if i := strings.LastIndex(sym, "."); i >= 0 {
		sym = sym[i+1:]
	}
	if len(sym) > 3 && contractMonth.MatchString(sym) {
		sym = sym[:len(sym)-3]
	}
	return sym
}

// Table maps instrument codes to contract metadata and answers lookups for
// symbols that do not match any code exactly.
type Table struct {
	metas map[string]Meta
	// codes ordered longest first so micro contracts ("MES") match before
	// the shorter roots they contain ("ES").
	order    []string
	fallback string
}

// NewTable builds a lookup table. fallback names the code returned for
// symbols that match nothing; it must exist in metas.
func NewTable(metas []Meta, fallback string) *Table {
	t := &Table{
		metas:    make(map[string]Meta, len(metas)),
		fallback: fallback,
	}
	for _, m := range metas {
		code := strings.ToUpper(m.Code)
		m.Code = code
		t.metas[code] = m
		t.order = append(t.order, code)
	}
	sort.Slice(t.order, func(i, j int) bool {
		if len(t.order[i]) != len(t.order[j]) {
			return len(t.order[i]) > len(t.order[j])
		}
		return t.order[i] < t.order[j]
	})
	return t
}

// Resolve returns the metadata for a symbol. Lookup is exact match first,
// then most-specific substring match (longest code wins, so "MESH26"
// resolves to MES rather than ES). Unknown symbols resolve to the table's
// fallback contract rather than failing; callers that need to distinguish
// unknown symbols should use Lookup.
func (t *Table) Resolve(symbol string) Meta {
	if m, ok := t.Lookup(symbol); ok {
		return m
	}
	return t.metas[t.fallback]
}

// Lookup is Resolve without the fallback policy.
func (t *Table) Lookup(symbol string) (Meta, bool) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if m, ok := t.metas[sym]; ok {
		return m, true
	}
	for _, code := range t.order {
		if strings.Contains(sym, code) {
			return t.metas[code], true
		}
	}
	return Meta{}, false
}

// TickValue returns the per-point (or per-pip) dollar value for a symbol,
// falling back to the default contract for unknown symbols.
func (t *Table) TickValue(symbol string) float64 {
	return t.Resolve(symbol).Value
}

// Codes returns every code in the table, sorted.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.metas))
	for code := range t.metas {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
