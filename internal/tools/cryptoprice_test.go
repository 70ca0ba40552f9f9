package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupQuote(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		want    string
		wantErr bool
	}{
		{name: "exact symbol", symbol: "BTC", want: "Bitcoin"},
		{name: "lowercase", symbol: "eth", want: "Ethereum"},
		{name: "surrounding whitespace", symbol: "  sol  ", want: "Solana"},
		{name: "unknown symbol", symbol: "NOPE", wantErr: true},
		{name: "empty", symbol: "", wantErr: true},
		{name: "whitespace only", symbol: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := LookupQuote(tt.symbol)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.Name)
			assert.Greater(t, quote.PriceUSD, 0.0)
		})
	}
}

func TestLookupQuote_Deterministic(t *testing.T) {
	first, err := LookupQuote("BTC")
	require.NoError(t, err)
	second, err := LookupQuote("btc")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuoteSymbols(t *testing.T) {
	symbols := QuoteSymbols()
	assert.Equal(t, []string{"ADA", "BTC", "DOGE", "ETH", "SOL", "XRP"}, symbols)
}

func TestFormatQuote(t *testing.T) {
	out := FormatQuote(Quote{Symbol: "BTC", Name: "Bitcoin", PriceUSD: 64250.00})
	assert.Equal(t, "Bitcoin (BTC): $64250.00 USD", out)
}
