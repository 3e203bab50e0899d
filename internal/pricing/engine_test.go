package pricing

import (
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(id, price string, qty int) Line {
	return Line{
		Product:  model.Product{ID: id, Name: "item " + id, Price: d(price), Category: model.CategoryPillows},
		Quantity: qty,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func TestQuote_StudentPromoScenario(t *testing.T) {
	e := NewEngine(DefaultOptions())

	q := e.Quote([]Line{line("1", "299.99", 1), line("2", "49.99", 2)}, "student10")

	assertDecimal(t, "399.97", q.Subtotal, "subtotal")
	assertDecimal(t, "0.1", q.DiscountRate, "rate")
	assertDecimal(t, "39.997", q.DiscountAmount, "discount")
	assertDecimal(t, "0", q.Shipping, "shipping")
	assertDecimal(t, "28.79784", q.Tax, "tax")
	assertDecimal(t, "388.77084", q.Total, "total")
	assert.Equal(t, "student10", q.PromoCode)
	assert.True(t, q.FreeShipping())

	s := q.Display()
	assert.Equal(t, "399.97", s.Subtotal)
	assert.Equal(t, "40.00", s.DiscountAmount)
	assert.Equal(t, "0.00", s.Shipping)
	assert.Equal(t, "28.80", s.Tax)
	assert.Equal(t, "388.77", s.Total)
	assert.Equal(t, "0.00", s.AmountToFreeShipping)

	require.Len(t, q.Lines, 2)
	assertDecimal(t, "99.98", q.Lines[1].Amount, "line amount")
}

func TestQuote_AmountToFreeShipping(t *testing.T) {
	e := NewEngine(DefaultOptions())

	q := e.Quote([]Line{line("1", "34.99", 1)}, "")
	assertDecimal(t, "40.01", q.AmountToFreeShipping, "amount to free shipping")

	q = e.Quote([]Line{line("1", "75", 1)}, "")
	assertDecimal(t, "9.99", q.Shipping, "shipping")
	assertDecimal(t, "0", q.AmountToFreeShipping, "amount to free shipping")

	q = e.Quote([]Line{line("1", "75.01", 1)}, "")
	assert.True(t, q.FreeShipping())
	assertDecimal(t, "0", q.AmountToFreeShipping, "amount to free shipping")
}

func TestQuote_ShippingUsesRawSubtotal(t *testing.T) {
	e := NewEngine(DefaultOptions())

	// 80 before discount, 64 after: shipping stays free
	q := e.Quote([]Line{line("1", "80", 1)}, "WELCOME20")
	assertDecimal(t, "16", q.DiscountAmount, "discount")
	assertDecimal(t, "0", q.Shipping, "shipping")
	assertDecimal(t, "5.12", q.Tax, "tax")
	assertDecimal(t, "69.12", q.Total, "total")
}

func TestQuote_ShippingThreshold(t *testing.T) {
	e := NewEngine(DefaultOptions())

	atThreshold := e.Quote([]Line{line("1", "75", 1)}, "")
	assertDecimal(t, "9.99", atThreshold.Shipping, "shipping at 75")

	above := e.Quote([]Line{line("1", "75.01", 1)}, "")
	assertDecimal(t, "0", above.Shipping, "shipping above 75")
}

func TestQuote_UnknownPromo(t *testing.T) {
	e := NewEngine(DefaultOptions())

	q := e.Quote([]Line{line("1", "10", 2)}, "bogus")
	assert.Equal(t, "", q.PromoCode)
	assert.True(t, q.DiscountRate.IsZero())
	assertDecimal(t, "9.99", q.Shipping, "shipping")
	assertDecimal(t, "1.6", q.Tax, "tax")
	assertDecimal(t, "31.59", q.Total, "total")
}

func TestQuote_SkipsNonPositiveQuantities(t *testing.T) {
	e := NewEngine(DefaultOptions())

	q := e.Quote([]Line{line("1", "10", 0), line("2", "10", -3), line("3", "5", 1)}, "")
	require.Len(t, q.Lines, 1)
	assertDecimal(t, "5", q.Subtotal, "subtotal")
}

func TestQuote_EmptyCart(t *testing.T) {
	q := NewEngine(DefaultOptions()).Quote(nil, "student10")
	assertDecimal(t, "0", q.Subtotal, "subtotal")
	assertDecimal(t, "9.99", q.Shipping, "shipping")
	assertDecimal(t, "9.99", q.Total, "total")
}

func TestPromoTable(t *testing.T) {
	table := DefaultPromoTable()

	rate, ok := table.Lookup("Student10")
	assert.True(t, ok)
	assertDecimal(t, "0.1", rate, "student10")

	rate, ok = table.Lookup("WELCOME20")
	assert.True(t, ok)
	assertDecimal(t, "0.2", rate, "welcome20")

	rate, ok = table.Lookup("")
	assert.False(t, ok)
	assert.True(t, rate.IsZero())
}

func TestParsePromoTable(t *testing.T) {
	table, err := ParsePromoTable(map[string]string{"Freshman5": " 0.05 "})
	require.NoError(t, err)
	rate, ok := table.Lookup("freshman5")
	assert.True(t, ok)
	assertDecimal(t, "0.05", rate, "freshman5")

	_, err = ParsePromoTable(map[string]string{"free": "1"})
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = ParsePromoTable(map[string]string{"neg": "-0.1"})
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = ParsePromoTable(map[string]string{"nan": "ten"})
	assert.Error(t, err)
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions("100", "4.50", "0.1", map[string]string{"student10": "0.1"})
	require.NoError(t, err)

	q := NewEngine(opts).Quote([]Line{line("1", "100", 1)}, "")
	assertDecimal(t, "4.5", q.Shipping, "shipping at custom threshold")
	assertDecimal(t, "10", q.Tax, "tax")

	_, err = ParseOptions("x", "1", "0.1", nil)
	assert.Error(t, err)
	_, err = ParseOptions("1", "x", "0.1", nil)
	assert.Error(t, err)
	_, err = ParseOptions("1", "1", "x", nil)
	assert.Error(t, err)
}
