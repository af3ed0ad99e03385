package booking

import (
	"context"
	"time"

	"github.com/Domenick1991/staybooking/internal/domain"
)

// CheckAvailability decides whether the half-open range
// [checkIn, checkOut) may be admitted for the listing. Any overlap with an
// existing non-cancelled, non-expired booking rejects the whole request.
//
// Callers are expected to hold the listing's admission lock so that the
// check and the subsequent insert are not interleaved with a concurrent
// request for the same listing.
func (s *Service) CheckAvailability(ctx context.Context, listingID int64, checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return domain.ErrInvalidDates
	}

	existing, err := s.bookings.FindOverlapping(ctx, listingID, checkIn, checkOut)
	if err != nil {
		return err
	}
	for _, b := range existing {
		if domain.RangesOverlap(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return domain.ErrDatesUnavailable
		}
	}
	return nil
}
