package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/fills"
	"tradelog/instrument"
	"tradelog/journal"
)

var base = time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)

func fill(symbol string, side fills.Side, qty int, price float64, minute int) fills.Fill {
	return fills.Fill{
		Symbol: symbol,
		Side:   side,
		Qty:    qty,
		Price:  price,
		Time:   base.Add(time.Duration(minute) * time.Minute),
	}
}

// table with a single point instrument worth $5 per point, tick 0.25.
func testTable(t *testing.T) *instrument.Table {
	t.Helper()
	return instrument.NewTable([]instrument.Meta{
		{Code: "X", Value: 5, TickSize: 0.25},
		{Code: "FX", Value: 1.25, TickSize: 0.0001, Pip: true},
	}, "X")
}

func TestLongRoundTrip(t *testing.T) {
	t.Parallel()

	trades := Run([]fills.Fill{
		fill("X", fills.Buy, 1, 100, 0),
		fill("X", fills.Sell, 1, 110, 15),
	}, testTable(t))

	require.Len(t, trades, 1)
	tr := trades[0]
	assert.Equal(t, journal.Long, tr.Direction)
	assert.Equal(t, 100.0, tr.EntryPrice)
	assert.Equal(t, 110.0, tr.ExitPrice)
	assert.InDelta(t, 50.0, tr.PnL, 1e-9)
	assert.InDelta(t, 40.0, tr.PnLTicks, 1e-9)
	assert.Equal(t, "2026-01-05 09:30:00-2026-01-05 09:45:00", tr.ID)
}

func TestShortRoundTrip(t *testing.T) {
	t.Parallel()

	trades := Run([]fills.Fill{
		fill("X", fills.Sell, 1, 100, 0),
		fill("X", fills.Buy, 1, 90, 10),
	}, testTable(t))

	require.Len(t, trades, 1)
	tr := trades[0]
	assert.Equal(t, journal.Short, tr.Direction)
	assert.Equal(t, 100.0, tr.EntryPrice)
	assert.Equal(t, 90.0, tr.ExitPrice)
	// short profits when price falls: 10 points * $5
	assert.InDelta(t, 50.0, tr.PnL, 1e-9)
}

func TestPipScaledPnL(t *testing.T) {
	t.Parallel()

	trades := Run([]fills.Fill{
		fill("FX", fills.Buy, 1, 1.0840, 0),
		fill("FX", fills.Sell, 1, 1.0851, 5),
	}, testTable(t))

	require.Len(t, trades, 1)
	// 0.0011 * 10000 * 1.25
	assert.InDelta(t, 13.75, trades[0].PnL, 1e-9)
	assert.InDelta(t, 11.0, trades[0].PnLTicks, 1e-9)
}

func TestFIFOClosesOldestFirst(t *testing.T) {
	t.Parallel()

	trades := Run([]fills.Fill{
		fill("X", fills.Buy, 1, 100, 0),
		fill("X", fills.Buy, 1, 102, 1),
		fill("X", fills.Sell, 1, 105, 2),
		fill("X", fills.Sell, 1, 103, 3),
	}, testTable(t))

	require.Len(t, trades, 2)
	assert.Equal(t, 100.0, trades[0].EntryPrice)
	assert.InDelta(t, 25.0, trades[0].PnL, 1e-9)
	assert.Equal(t, 102.0, trades[1].EntryPrice)
	assert.InDelta(t, 5.0, trades[1].PnL, 1e-9)
}

func TestInstrumentsMatchedIndependently(t *testing.T) {
	t.Parallel()

	table := instrument.NewTable([]instrument.Meta{
		{Code: "A", Value: 1, TickSize: 1},
		{Code: "B", Value: 2, TickSize: 1},
	}, "A")

	trades := Run([]fills.Fill{
		fill("A", fills.Buy, 1, 10, 0),
		fill("B", fills.Sell, 1, 20, 1),
		fill("A", fills.Sell, 1, 12, 2),
		fill("B", fills.Buy, 1, 19, 3),
	}, table)

	require.Len(t, trades, 2)
	assert.Equal(t, "A", trades[0].Symbol)
	assert.Equal(t, journal.Long, trades[0].Direction)
	assert.InDelta(t, 2.0, trades[0].PnL, 1e-9)
	assert.Equal(t, "B", trades[1].Symbol)
	assert.Equal(t, journal.Short, trades[1].Direction)
	assert.InDelta(t, 2.0, trades[1].PnL, 1e-9)
}

func TestOpenLegsAreDropped(t *testing.T) {
	t.Parallel()

	trades := Run([]fills.Fill{
		fill("X", fills.Buy, 1, 100, 0),
		fill("X", fills.Sell, 1, 110, 1),
		fill("X", fills.Buy, 1, 111, 2), // still open at end of stream
	}, testTable(t))

	require.Len(t, trades, 1)
}

func TestExitQtySizesTheTrade(t *testing.T) {
	t.Parallel()

	trades := Run([]fills.Fill{
		fill("X", fills.Buy, 3, 100, 0),
		fill("X", fills.Sell, 2, 101, 1),
	}, testTable(t))

	require.Len(t, trades, 1)
	assert.Equal(t, 2, trades[0].Qty)
	assert.InDelta(t, 10.0, trades[0].PnL, 1e-9)
}

func TestLossTrade(t *testing.T) {
	t.Parallel()

	trades := Run([]fills.Fill{
		fill("X", fills.Buy, 1, 100, 0),
		fill("X", fills.Sell, 1, 98.5, 1),
	}, testTable(t))

	require.Len(t, trades, 1)
	assert.InDelta(t, -7.5, trades[0].PnL, 1e-9)
	assert.InDelta(t, -6.0, trades[0].PnLTicks, 1e-9)
}
