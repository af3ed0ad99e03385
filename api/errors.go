package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/gin-gonic/gin"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDates):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSelfBooking):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDatesUnavailable),
		errors.Is(err, domain.ErrListingBusy),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotAllowed):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

// actingUser reads the authenticated user id set by the gateway. Session
// handling itself is out of scope for this service.
func actingUser(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.GetHeader("X-User-ID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid X-User-ID header"})
		return 0, false
	}
	return id, true
}
