package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	testCases := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{name: "identical ranges", aStart: day(1), aEnd: day(5), bStart: day(1), bEnd: day(5), expected: true},
		{name: "partial overlap", aStart: day(3), aEnd: day(6), bStart: day(1), bEnd: day(5), expected: true},
		{name: "contained range", aStart: day(2), aEnd: day(3), bStart: day(1), bEnd: day(5), expected: true},
		{name: "back to back check-out equals check-in", aStart: day(5), aEnd: day(7), bStart: day(1), bEnd: day(5), expected: false},
		{name: "disjoint ranges", aStart: day(10), aEnd: day(12), bStart: day(1), bEnd: day(5), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// симметричность
			assert.Equal(t, tc.expected, RangesOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusConfirmed))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusExpired))
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))

	assert.False(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusExpired.CanTransitionTo(BookingStatusConfirmed))

	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusExpired.IsTerminal())
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
}

func TestFloorToDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 18, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), FloorToDay(ts))
}
