package booking

import (
	"time"

	"github.com/Domenick1991/staybooking/internal/domain"
)

// Nights returns the number of billable nights between checkIn and
// checkOut. Any fractional day counts as a full night, so a stay from
// Jan 1 12:00 to Jan 2 10:00 is still one night, Jan 1 to Jan 3 is two.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// TotalPriceCents computes nights * nightly rate. Returns ErrInvalidDates
// when the range yields zero or negative nights.
func TotalPriceCents(nightlyRateCents int64, checkIn, checkOut time.Time) (int64, error) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, domain.ErrInvalidDates
	}
	return int64(nights) * nightlyRateCents, nil
}
