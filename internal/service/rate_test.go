package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(date(2026, 3, 10), date(2026, 3, 11)))
	assert.Equal(t, 3, Nights(date(2026, 3, 10), date(2026, 3, 13)))
	assert.Equal(t, 0, Nights(date(2026, 3, 10), date(2026, 3, 10)))
	assert.Equal(t, -2, Nights(date(2026, 3, 12), date(2026, 3, 10)))
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Nights(checkIn, checkOut))
}

func TestEffectiveRate(t *testing.T) {
	rate, err := EffectiveRate(decimal.NewFromInt(200000), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(180000)), "got %s", rate)
}

func TestEffectiveRate_ZeroDiscount(t *testing.T) {
	rate, err := EffectiveRate(decimal.NewFromInt(150000), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(150000)), "got %s", rate)
}

func TestEffectiveRate_FullDiscount(t *testing.T) {
	rate, err := EffectiveRate(decimal.NewFromInt(150000), decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, rate.IsZero(), "got %s", rate)
}

func TestEffectiveRate_Rounds(t *testing.T) {
	rate, err := EffectiveRate(decimal.NewFromFloat(99.99), decimal.NewFromFloat(12.5))
	require.NoError(t, err)
	assert.Equal(t, "87.49", rate.StringFixed(2))
}

func TestEffectiveRate_OutOfBounds(t *testing.T) {
	_, err := EffectiveRate(decimal.NewFromInt(100), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = EffectiveRate(decimal.NewFromInt(100), decimal.NewFromInt(101))
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestQuoteStay_MultipliesNights(t *testing.T) {
	quote, err := QuoteStay(decimal.NewFromInt(200000), decimal.NewFromInt(10), date(2026, 3, 10), date(2026, 3, 13))
	require.NoError(t, err)

	assert.Equal(t, 3, quote.Nights)
	assert.True(t, quote.EffectiveRate.Equal(decimal.NewFromInt(180000)), "got %s", quote.EffectiveRate)
	assert.True(t, quote.TotalAmount.Equal(decimal.NewFromInt(540000)), "got %s", quote.TotalAmount)
}

func TestQuoteStay_SingleNight(t *testing.T) {
	quote, err := QuoteStay(decimal.NewFromInt(200000), decimal.Zero, date(2026, 3, 10), date(2026, 3, 11))
	require.NoError(t, err)
	assert.True(t, quote.TotalAmount.Equal(decimal.NewFromInt(200000)), "got %s", quote.TotalAmount)
}

func TestQuoteStay_RejectsEmptyStay(t *testing.T) {
	_, err := QuoteStay(decimal.NewFromInt(200000), decimal.Zero, date(2026, 3, 10), date(2026, 3, 10))
	assert.ErrorIs(t, err, ErrInvalidDates)

	_, err = QuoteStay(decimal.NewFromInt(200000), decimal.Zero, date(2026, 3, 12), date(2026, 3, 10))
	assert.ErrorIs(t, err, ErrInvalidDates)
}
