package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errors.New("discount rate must be in [0,1)")

// PromoTable maps lower-cased promo codes to discount rates.
type PromoTable map[string]decimal.Decimal

func DefaultPromoTable() PromoTable {
	return PromoTable{
		"student10": decimal.RequireFromString("0.1"),
		"welcome20": decimal.RequireFromString("0.2"),
	}
}

// ParsePromoTable builds a table from code -> rate strings, e.g. {"student10": "0.1"}.
func ParsePromoTable(raw map[string]string) (PromoTable, error) {
	t := make(PromoTable, len(raw))
	for code, s := range raw {
		rate, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("promo %q: %w", code, err)
		}
		if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("promo %q: %w (got %s)", code, ErrInvalidRate, rate)
		}
		t[strings.ToLower(code)] = rate
	}
	return t, nil
}

// Lookup returns the rate for code and whether it is known. Unknown codes are rate zero.
func (t PromoTable) Lookup(code string) (decimal.Decimal, bool) {
	rate, ok := t[strings.ToLower(code)]
	if !ok {
		return decimal.Zero, false
	}
	return rate, true
}
