package fills

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(kv ...string) Row {
	r := make(Row)
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i]] = kv[i+1]
	}
	return r
}

func TestParseTimeFormats(t *testing.T) {
	t.Parallel()

	loc := time.UTC

	got, err := ParseTime("1/5/26 9:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 30, 0, 0, loc), got)

	got, err = ParseTime("12/31/25 15:59", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 31, 15, 59, 0, 0, loc), got)

	got, err = ParseTime("2026-01-05 09:30:45", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 30, 45, 0, loc), got)

	_, err = ParseTime("yesterday lunchtime", loc)
	assert.Error(t, err)
}

func TestNormalizeFiltersUnfilled(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row("Symbol", "F.US.MNQH26", "Side", "Buy", "Status", "Filled", "Fill Qty", "1", "Avg Fill Price", "21000.25", "Status Time", "1/5/26 9:30"),
		row("Symbol", "F.US.MNQH26", "Side", "Sell", "Status", "Cancelled", "Fill Qty", "1", "Avg Fill Price", "21010", "Status Time", "1/5/26 9:31"),
		row("Symbol", "F.US.MNQH26", "Side", "Sell", "Status", "Working", "Fill Qty", "0", "Avg Fill Price", "21010", "Status Time", "1/5/26 9:32"),
		row("Symbol", "F.US.MNQH26", "Side", "Sell", "Status", "Filled", "Fill Qty", "0", "Avg Fill Price", "21010", "Status Time", "1/5/26 9:33"),
	}

	got, warnings := Normalize(rows, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, "MNQ", got[0].Symbol)
	assert.Equal(t, Buy, got[0].Side)
	// only the zero-qty filled row warns; unfilled rows drop silently
	assert.Len(t, warnings, 1)
}

func TestNormalizeAcceptsAnyFilledOrderType(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row("Symbol", "MESH26", "Side", "Buy", "Status", "Filled", "Type", "Trailing Stop", "Fill Qty", "2", "Avg Fill Price", "5900.00", "Status Time", "1/5/26 10:00"),
	}
	got, warnings := Normalize(rows, time.UTC)
	require.Len(t, got, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, 2, got[0].Qty)
}

func TestNormalizeQtyFallbackColumn(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row("Symbol", "MES", "Side", "Buy", "Status", "Filled", "Qty", "3", "Avg Fill Price", "5900", "Status Time", "1/5/26 10:00"),
	}
	got, _ := Normalize(rows, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Qty)
}

func TestNormalizeSkipsMalformedRows(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row("Symbol", "MES", "Side", "Buy", "Status", "Filled", "Fill Qty", "1", "Avg Fill Price", "not-a-price", "Status Time", "1/5/26 10:00"),
		row("Symbol", "MES", "Side", "Buy", "Status", "Filled", "Fill Qty", "1", "Avg Fill Price", "5900", "Status Time", "whenever"),
		row("Symbol", "MES", "Side", "Hold", "Status", "Filled", "Fill Qty", "1", "Avg Fill Price", "5900", "Status Time", "1/5/26 10:00"),
		row("Symbol", "MES", "Side", "Sell", "Status", "Filled", "Fill Qty", "1", "Avg Fill Price", "5901.25", "Status Time", "1/5/26 10:05"),
	}

	got, warnings := Normalize(rows, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, 5901.25, got[0].Price)
	assert.Len(t, warnings, 3)
}

func TestNormalizeSortsChronologicallyAcrossInstruments(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row("Symbol", "MNQ", "Side", "Sell", "Status", "Filled", "Fill Qty", "1", "Avg Fill Price", "21010", "Status Time", "1/5/26 11:00"),
		row("Symbol", "MES", "Side", "Buy", "Status", "Filled", "Fill Qty", "1", "Avg Fill Price", "5900", "Status Time", "1/5/26 9:00"),
		row("Symbol", "MNQ", "Side", "Buy", "Status", "Filled", "Fill Qty", "1", "Avg Fill Price", "21000", "Status Time", "1/5/26 10:00"),
	}

	got, _ := Normalize(rows, time.UTC)
	require.Len(t, got, 3)
	assert.Equal(t, "MES", got[0].Symbol)
	assert.Equal(t, "MNQ", got[1].Symbol)
	assert.Equal(t, Sell, got[2].Side)
	assert.True(t, got[0].Time.Before(got[1].Time))
	assert.True(t, got[1].Time.Before(got[2].Time))
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	data := `Symbol,Side,Status,Fill Qty,Avg Fill Price,Status Time,Extra
F.US.MNQH26,Buy,Filled,1,21000.25,1/5/26 9:30,ignored
F.US.MNQH26,Sell,Filled,1,21010.25,1/5/26 9:45
`
	rows, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "F.US.MNQH26", rows[0]["Symbol"])
	assert.Equal(t, "ignored", rows[0]["Extra"])
	// second record is short; missing column reads as empty
	assert.Equal(t, "", rows[1]["Extra"])
}

func TestReadCSVEmptyInput(t *testing.T) {
	t.Parallel()

	rows, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
