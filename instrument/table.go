package instrument

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFallback is the contract assumed for symbols the table does not
// recognize. Resolving never fails; an unrecognized symbol silently prices
// as a micro E-mini S&P. Revisit if imports start carrying instruments the
// table has no entry for.
const DefaultFallback = "MES"

// Futures contract table. Values are dollars per full point of price
// movement (per pip for the currency contracts). Data, not behavior: a
// custom table can be loaded with TableFromFile.
var defaultMetas = []Meta{
	// Equity index
	{Code: "MES", Name: "Micro E-mini S&P 500", Value: 5, TickSize: 0.25},
	{Code: "ES", Name: "E-mini S&P 500", Value: 50, TickSize: 0.25},
	{Code: "MNQ", Name: "Micro E-mini Nasdaq-100", Value: 2, TickSize: 0.25},
	{Code: "NQ", Name: "E-mini Nasdaq-100", Value: 20, TickSize: 0.25},
	{Code: "MYM", Name: "Micro E-mini Dow", Value: 0.5, TickSize: 1},
	{Code: "YM", Name: "E-mini Dow", Value: 5, TickSize: 1},
	{Code: "M2K", Name: "Micro E-mini Russell 2000", Value: 5, TickSize: 0.1},
	{Code: "RTY", Name: "E-mini Russell 2000", Value: 50, TickSize: 0.1},

	// Metals
	{Code: "MGC", Name: "Micro Gold", Value: 10, TickSize: 0.1},
	{Code: "GC", Name: "Gold", Value: 100, TickSize: 0.1},
	{Code: "M1OZ", Name: "1-Ounce Gold", Value: 1, TickSize: 0.25},
	{Code: "SIL", Name: "Micro Silver", Value: 1000, TickSize: 0.005},
	{Code: "SI", Name: "Silver", Value: 5000, TickSize: 0.005},
	{Code: "MHG", Name: "Micro Copper", Value: 2500, TickSize: 0.0005},
	{Code: "HG", Name: "Copper", Value: 25000, TickSize: 0.0005},

	// Energy
	{Code: "MCL", Name: "Micro Crude Oil", Value: 10, TickSize: 0.01},
	{Code: "CL", Name: "Crude Oil", Value: 1000, TickSize: 0.01},
	{Code: "MNG", Name: "Micro Natural Gas", Value: 1000, TickSize: 0.001},
	{Code: "NG", Name: "Natural Gas", Value: 10000, TickSize: 0.001},

	// Rates
	{Code: "ZT", Name: "2-Year Note", Value: 2000, TickSize: 0.0078125},
	{Code: "ZF", Name: "5-Year Note", Value: 1000, TickSize: 0.0078125},
	{Code: "ZN", Name: "10-Year Note", Value: 1000, TickSize: 0.015625},
	{Code: "ZB", Name: "30-Year Bond", Value: 1000, TickSize: 0.03125},

	// Grains
	{Code: "ZC", Name: "Corn", Value: 50, TickSize: 0.25},
	{Code: "ZW", Name: "Wheat", Value: 50, TickSize: 0.25},
	{Code: "ZS", Name: "Soybeans", Value: 50, TickSize: 0.25},
	{Code: "ZL", Name: "Soybean Oil", Value: 600, TickSize: 0.01},
	{Code: "ZM", Name: "Soybean Meal", Value: 100, TickSize: 0.1},

	// Currencies (pip-scaled: price differences are multiplied by PipScale
	// before applying the per-pip value)
	{Code: "M6E", Name: "Micro EUR/USD", Value: 1.25, TickSize: 0.0001, Pip: true},
	{Code: "M6A", Name: "Micro AUD/USD", Value: 1, TickSize: 0.0001, Pip: true},
	{Code: "M6B", Name: "Micro GBP/USD", Value: 0.625, TickSize: 0.0001, Pip: true},
	{Code: "MCD", Name: "Micro CAD/USD", Value: 1, TickSize: 0.0001, Pip: true},
	{Code: "MJY", Name: "Micro JPY/USD", Value: 1.25, TickSize: 0.0001, Pip: true},
	{Code: "MSF", Name: "Micro CHF/USD", Value: 1.25, TickSize: 0.0001, Pip: true},
	{Code: "6E", Name: "EUR/USD", Value: 12.5, TickSize: 0.0001, Pip: true},
	{Code: "6A", Name: "AUD/USD", Value: 10, TickSize: 0.0001, Pip: true},
	{Code: "6B", Name: "GBP/USD", Value: 6.25, TickSize: 0.0001, Pip: true},
	{Code: "6C", Name: "CAD/USD", Value: 10, TickSize: 0.0001, Pip: true},
	{Code: "6J", Name: "JPY/USD", Value: 12.5, TickSize: 0.0001, Pip: true},
	{Code: "6S", Name: "CHF/USD", Value: 12.5, TickSize: 0.0001, Pip: true},
}

// Default is the built-in contract table.
var Default = NewTable(defaultMetas, DefaultFallback)

type tableFile struct {
	Fallback    string `yaml:"fallback"`
	Instruments []Meta `yaml:"instruments"`
}

// TableFromFile loads a custom instrument table from a YAML file with the
// shape:
//
//	fallback: MES
//	instruments:
//	  - code: MES
//	    value: 5
//	    tick_size: 0.25
func TableFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instrument table: %w", err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse instrument table: %w", err)
	}
	if len(tf.Instruments) == 0 {
		return nil, fmt.Errorf("instrument table %s defines no instruments", path)
	}
	if tf.Fallback == "" {
		tf.Fallback = tf.Instruments[0].Code
	}

	found := false
	for _, m := range tf.Instruments {
		if m.Value <= 0 {
			return nil, fmt.Errorf("instrument %s: value must be positive", m.Code)
		}
		if strings.EqualFold(m.Code, tf.Fallback) {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("fallback %s not present in instrument table", tf.Fallback)
	}

	return NewTable(tf.Instruments, strings.ToUpper(tf.Fallback)), nil
}
