// Package match reconstructs closed round-trip trades from a chronological
// fill stream by FIFO position matching.
package match

import (
	"time"

	"tradelog/fills"
	"tradelog/instrument"
	"tradelog/journal"
)

// openPosition is one open leg waiting for an opposing fill. It lives only
// inside a single Run invocation.
type openPosition struct {
	direction journal.Direction
	price     float64
	qty       int
	time      time.Time
}

// Run walks fills in order, keeping a FIFO queue of open positions per
// instrument. A Buy closes the oldest open short if there is one, otherwise
// it opens a long; a Sell closes the oldest open long, otherwise it opens a
// short. Each emitted trade pairs one entire entry leg with one entire exit
// leg; quantity mismatches between the legs are not netted (the exit fill's
// quantity is used for sizing).
//
// Fills must already be in ascending time order across all instruments,
// which is what fills.Normalize produces. Legs still open when the stream
// ends are dropped: only closed round trips become trades. A nil table uses
// the built-in instrument table.
func Run(stream []fills.Fill, table *instrument.Table) []journal.Trade {
	if table == nil {
		table = instrument.Default
	}

	open := make(map[string][]openPosition)
	var trades []journal.Trade

	for _, f := range stream {
		queue := open[f.Symbol]

		switch f.Side {
		case fills.Buy:
			if len(queue) > 0 && queue[0].direction == journal.Short {
				entry := queue[0]
				open[f.Symbol] = queue[1:]
				trades = append(trades, closeLeg(entry, f, table))
			} else {
				open[f.Symbol] = append(queue, openPosition{journal.Long, f.Price, f.Qty, f.Time})
			}
		case fills.Sell:
			if len(queue) > 0 && queue[0].direction == journal.Long {
				entry := queue[0]
				open[f.Symbol] = queue[1:]
				trades = append(trades, closeLeg(entry, f, table))
			} else {
				open[f.Symbol] = append(queue, openPosition{journal.Short, f.Price, f.Qty, f.Time})
			}
		}
	}

	return trades
}

// closeLeg builds the closed trade for an entry leg and the exit fill that
// closed it. priceDiff is signed so profit is positive for a long when price
// rises and for a short when price falls; the instrument's metadata applies
// pip or point scaling.
func closeLeg(entry openPosition, exit fills.Fill, table *instrument.Table) journal.Trade {
	meta := table.Resolve(exit.Symbol)

	priceDiff := exit.Price - entry.price
	if entry.direction == journal.Short {
		priceDiff = entry.price - exit.Price
	}

	return journal.Trade{
		ID:         journal.TradeID(entry.time, exit.Time),
		Symbol:     exit.Symbol,
		Direction:  entry.direction,
		EntryPrice: entry.price,
		ExitPrice:  exit.Price,
		EntryTime:  entry.time,
		ExitTime:   exit.Time,
		Qty:        exit.Qty,
		PnL:        meta.PnL(priceDiff, exit.Qty),
		PnLTicks:   meta.Ticks(priceDiff),
		Notes:      "",
		Tags:       []string{},
	}
}
