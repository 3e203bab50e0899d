// Package pricing turns cart lines and a promo code into a checkout quote.
//
// All arithmetic is exact decimal; amounts are only rounded to cents by Quote.Display.
// Shipping is decided on the subtotal before discount while tax applies after it.
package pricing

import (
	"fmt"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/shopspring/decimal"
)

type Options struct {
	FreeShippingThreshold decimal.Decimal // shipping is free strictly above this subtotal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
	Promos                PromoTable
}

func DefaultOptions() Options {
	return Options{
		FreeShippingThreshold: decimal.NewFromInt(75),
		ShippingFee:           decimal.RequireFromString("9.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
		Promos:                DefaultPromoTable(),
	}
}

// ParseOptions reads the string form used by configuration.
func ParseOptions(threshold, fee, taxRate string, promos map[string]string) (Options, error) {
	var (
		opts Options
		err  error
	)
	if opts.FreeShippingThreshold, err = decimal.NewFromString(threshold); err != nil {
		return opts, fmt.Errorf("free shipping threshold: %w", err)
	}
	if opts.ShippingFee, err = decimal.NewFromString(fee); err != nil {
		return opts, fmt.Errorf("shipping fee: %w", err)
	}
	if opts.TaxRate, err = decimal.NewFromString(taxRate); err != nil {
		return opts, fmt.Errorf("tax rate: %w", err)
	}
	if opts.Promos, err = ParsePromoTable(promos); err != nil {
		return opts, err
	}
	return opts, nil
}

type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	if opts.Promos == nil {
		opts.Promos = PromoTable{}
	}
	return &Engine{opts: opts}
}

type Line struct {
	Product  model.Product
	Quantity int
}

type LineAmount struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Amount    decimal.Decimal
}

type Quote struct {
	Lines          []LineAmount
	PromoCode      string // applied code, empty when unknown or none
	DiscountRate   decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Shipping       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal

	// AmountToFreeShipping is how much more subtotal waives shipping; zero once it is free.
	AmountToFreeShipping decimal.Decimal
}

// Quote prices lines. Lines with a non-positive quantity contribute nothing.
func (e *Engine) Quote(lines []Line, promoCode string) Quote {
	q := Quote{
		Lines:    make([]LineAmount, 0, len(lines)),
		Subtotal: decimal.Zero,
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		amount := l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		q.Lines = append(q.Lines, LineAmount{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
			Amount:    amount,
		})
		q.Subtotal = q.Subtotal.Add(amount)
	}

	rate, known := e.opts.Promos.Lookup(promoCode)
	if known {
		q.PromoCode = promoCode
	}
	q.DiscountRate = rate
	q.DiscountAmount = q.Subtotal.Mul(rate)

	q.AmountToFreeShipping = decimal.Zero
	if q.Subtotal.GreaterThan(e.opts.FreeShippingThreshold) {
		q.Shipping = decimal.Zero
	} else {
		q.Shipping = e.opts.ShippingFee
		if q.Shipping.IsPositive() {
			q.AmountToFreeShipping = e.opts.FreeShippingThreshold.Sub(q.Subtotal)
		}
	}

	discounted := q.Subtotal.Sub(q.DiscountAmount)
	q.Tax = discounted.Mul(e.opts.TaxRate)
	q.Total = discounted.Add(q.Shipping).Add(q.Tax)
	return q
}

// Summary is the presentation form: every amount fixed to two decimals.
type Summary struct {
	Subtotal       string
	DiscountAmount string
	Shipping       string
	Tax            string
	Total          string

	AmountToFreeShipping string
}

func (q Quote) Display() Summary {
	return Summary{
		Subtotal:             q.Subtotal.StringFixed(2),
		DiscountAmount:       q.DiscountAmount.StringFixed(2),
		Shipping:             q.Shipping.StringFixed(2),
		Tax:                  q.Tax.StringFixed(2),
		Total:                q.Total.StringFixed(2),
		AmountToFreeShipping: q.AmountToFreeShipping.StringFixed(2),
	}
}

func (q Quote) FreeShipping() bool {
	return q.Shipping.IsZero()
}
