package service

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// StayQuote is the advisory price derivation for a stay. Only the resulting
// totals are ever persisted; the discount stays client-facing.
type StayQuote struct {
	NightlyRate     decimal.Decimal
	DiscountPercent decimal.Decimal
	EffectiveRate   decimal.Decimal
	Nights          int
	TotalAmount     decimal.Decimal
}

// Nights returns the number of whole nights between the two dates, ignoring
// the time-of-day component.
func Nights(checkIn, checkOut time.Time) int {
	in := dateOnly(checkIn)
	out := dateOnly(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

// EffectiveRate applies a percentage discount to a nightly rate.
func EffectiveRate(nightlyRate, discountPercent decimal.Decimal) (decimal.Decimal, error) {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return decimal.Zero, ErrInvalidDiscount
	}
	return nightlyRate.Mul(hundred.Sub(discountPercent)).Div(hundred).Round(2), nil
}

// QuoteStay derives the billable total for a stay: the discounted nightly
// rate multiplied by the number of nights.
func QuoteStay(nightlyRate, discountPercent decimal.Decimal, checkIn, checkOut time.Time) (*StayQuote, error) {
	nights := Nights(checkIn, checkOut)
	if nights < 1 {
		return nil, ErrInvalidDates
	}

	effective, err := EffectiveRate(nightlyRate, discountPercent)
	if err != nil {
		return nil, err
	}

	return &StayQuote{
		NightlyRate:     nightlyRate,
		DiscountPercent: discountPercent,
		EffectiveRate:   effective,
		Nights:          nights,
		TotalAmount:     effective.Mul(decimal.NewFromInt(int64(nights))).Round(2),
	}, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
