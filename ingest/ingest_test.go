package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/journal"
)

const export = `Symbol,Side,Type,Status,Fill Qty,Avg Fill Price,Status Time
F.US.MNQH26,Buy,Market,Filled,1,21000.25,1/5/26 9:30
F.US.MNQH26,Sell,Limit,Filled,1,21010.25,1/5/26 9:45
F.US.MESH26,Sell,Market,Filled,2,5900.00,1/5/26 10:00
F.US.MESH26,Buy,Stop,Filled,2,5895.00,1/5/26 10:30
F.US.MESH26,Buy,Limit,Cancelled,1,5890.00,1/5/26 10:45
`

func utcOpts() Options {
	return Options{Location: time.UTC}
}

func TestCSVImport(t *testing.T) {
	t.Parallel()

	res, trades := CSV(strings.NewReader(export), nil, utcOpts())
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.TradesAdded)
	assert.Zero(t, res.SkippedRows)
	assert.Contains(t, res.Message, "2 new trades")

	require.Len(t, trades, 2)
	// most recent exit first
	assert.Equal(t, "MES", trades[0].Symbol)
	assert.Equal(t, journal.Short, trades[0].Direction)
	// short 2 lots, 5 points in its favor, $5/point micro
	assert.InDelta(t, 50.0, trades[0].PnL, 1e-9)
	assert.Equal(t, "MNQ", trades[1].Symbol)
	assert.Equal(t, journal.Long, trades[1].Direction)
	// long 1 lot, 10 points, $2/point micro
	assert.InDelta(t, 20.0, trades[1].PnL, 1e-9)
}

func TestReimportIsIdempotent(t *testing.T) {
	t.Parallel()

	res, trades := CSV(strings.NewReader(export), nil, utcOpts())
	require.True(t, res.Success)
	require.Len(t, trades, 2)

	res2, trades2 := CSV(strings.NewReader(export), trades, utcOpts())
	assert.False(t, res2.Success)
	assert.Zero(t, res2.TradesAdded)
	assert.Contains(t, res2.Message, "already be imported")
	assert.Equal(t, trades, trades2)
}

func TestReimportPreservesAnnotations(t *testing.T) {
	t.Parallel()

	_, trades := CSV(strings.NewReader(export), nil, utcOpts())
	require.Len(t, trades, 2)
	trades[1].Notes = "clean open drive"
	trades[1].Tags = []string{"Breakout"}

	_, after := CSV(strings.NewReader(export), trades, utcOpts())
	require.Len(t, after, 2)
	assert.Equal(t, "clean open drive", after[1].Notes)
	assert.Equal(t, []string{"Breakout"}, after[1].Tags)
}

func TestImportSkipsBadRowsAndReportsThem(t *testing.T) {
	t.Parallel()

	bad := `Symbol,Side,Status,Fill Qty,Avg Fill Price,Status Time
F.US.MNQH26,Buy,Filled,1,21000.25,1/5/26 9:30
F.US.MNQH26,Sell,Filled,1,garbage,1/5/26 9:45
F.US.MNQH26,Sell,Filled,1,21010.25,1/5/26 10:00
`
	res, trades := CSV(strings.NewReader(bad), nil, utcOpts())
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.TradesAdded)
	assert.Equal(t, 1, res.SkippedRows)
	assert.Contains(t, res.Message, "1 row skipped")
	require.Len(t, trades, 1)
	assert.InDelta(t, 20.0, trades[0].PnL, 1e-9)
}

func TestImportEmptyInput(t *testing.T) {
	t.Parallel()

	existing := []journal.Trade{{ID: "keep"}}

	res, trades := CSV(strings.NewReader(""), existing, utcOpts())
	assert.False(t, res.Success)
	assert.Zero(t, res.TradesAdded)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, existing, trades)
}

func TestImportHeaderOnly(t *testing.T) {
	t.Parallel()

	res, trades := CSV(strings.NewReader("Symbol,Side,Status\n"), nil, utcOpts())
	assert.False(t, res.Success)
	assert.Zero(t, res.TradesAdded)
	assert.Nil(t, trades)
}

func TestImportMalformedCSV(t *testing.T) {
	t.Parallel()

	existing := []journal.Trade{{ID: "keep"}}

	// unterminated quote makes the reader fail outright
	res, trades := CSV(strings.NewReader("Symbol,Side\n\"broken,Buy\nx,y\n"), existing, utcOpts())
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Failed to process CSV file")
	assert.Equal(t, existing, trades)
}
