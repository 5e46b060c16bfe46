package sellerboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	cases := map[string]string{
		"1234.56":      "1234.56",
		"-12.5":        "-12.5",
		`"42.10"`:      "42.1",
		"  7  ":        "7",
		`" -3.25 "`:    "-3.25",
		"":             "0",
		"abc":          "0",
		"1,234.56":     "0",
		"12,5":         "0",
		"NaN":          "0",
		"\t\"\"\t":     "0",
		"0.0000001":    "0.0000001",
		"100000000000": "100000000000",
	}
	for in, want := range cases {
		got := ParseNumber(in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "ParseNumber(%q) = %s, want %s", in, got, want)
	}
}
