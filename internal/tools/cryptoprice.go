package tools

import (
	"fmt"
	"sort"
	"strings"
)

// Quote is a fixed reference price for one asset. Values come from a static
// in-memory table; there is no market data client behind this tool.
type Quote struct {
	Symbol   string
	Name     string
	PriceUSD float64
}

// quoteTable is the static asset table served by the crypto_price tool.
var quoteTable = map[string]Quote{
	"BTC":  {Symbol: "BTC", Name: "Bitcoin", PriceUSD: 64250.00},
	"ETH":  {Symbol: "ETH", Name: "Ethereum", PriceUSD: 3150.75},
	"SOL":  {Symbol: "SOL", Name: "Solana", PriceUSD: 142.30},
	"ADA":  {Symbol: "ADA", Name: "Cardano", PriceUSD: 0.45},
	"DOGE": {Symbol: "DOGE", Name: "Dogecoin", PriceUSD: 0.12},
	"XRP":  {Symbol: "XRP", Name: "XRP", PriceUSD: 0.52},
}

// LookupQuote returns the reference quote for a symbol, case-insensitive.
func LookupQuote(symbol string) (Quote, error) {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	if normalized == "" {
		return Quote{}, fmt.Errorf("symbol cannot be empty")
	}

	quote, ok := quoteTable[normalized]
	if !ok {
		return Quote{}, fmt.Errorf("unknown symbol: %s (known: %s)", normalized, strings.Join(QuoteSymbols(), ", "))
	}

	return quote, nil
}

// QuoteSymbols returns the symbols in the table, sorted.
func QuoteSymbols() []string {
	symbols := make([]string, 0, len(quoteTable))
	for s := range quoteTable {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// FormatQuote renders a quote as a single line of text.
func FormatQuote(q Quote) string {
	return fmt.Sprintf("%s (%s): $%.2f USD", q.Name, q.Symbol, q.PriceUSD)
}
