package booking

import (
	"testing"
	"time"

	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{name: "two full nights", checkIn: date(2024, 1, 1), checkOut: date(2024, 1, 3), expected: 2},
		{name: "one night", checkIn: date(2024, 1, 1), checkOut: date(2024, 1, 2), expected: 1},
		{name: "fractional day counts as full night", checkIn: date(2024, 1, 1), checkOut: date(2024, 1, 2).Add(10 * time.Hour), expected: 2},
		{name: "partial single day", checkIn: date(2024, 1, 1).Add(12 * time.Hour), checkOut: date(2024, 1, 2).Add(10 * time.Hour), expected: 1},
		{name: "zero-length stay", checkIn: date(2024, 1, 1), checkOut: date(2024, 1, 1), expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Nights(tc.checkIn, tc.checkOut))
		})
	}
}

func TestTotalPriceCents(t *testing.T) {
	total, err := TotalPriceCents(100, date(2024, 1, 1), date(2024, 1, 3))
	assert.NoError(t, err)
	assert.Equal(t, int64(200), total)
}

func TestTotalPriceCents_InvalidRange(t *testing.T) {
	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{name: "equal dates", checkIn: date(2024, 1, 1), checkOut: date(2024, 1, 1)},
		{name: "reversed dates", checkIn: date(2024, 1, 3), checkOut: date(2024, 1, 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, err := TotalPriceCents(100, tc.checkIn, tc.checkOut)
			assert.ErrorIs(t, err, domain.ErrInvalidDates)
			assert.Zero(t, total)
		})
	}
}
