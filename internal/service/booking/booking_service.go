package booking

import (
	"context"
	"time"

	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/Domenick1991/staybooking/internal/kafka"
	"github.com/Domenick1991/staybooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID, actorID int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID int64) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingWithListing, error)
	ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error)
}

type Cache interface {
	AcquireAdmissionLock(ctx context.Context, listingID int64, ttl time.Duration) (bool, error)
	ReleaseAdmissionLock(ctx context.Context, listingID int64) error
	GetListings(ctx context.Context) ([]domain.Listing, error)
	SetListings(ctx context.Context, listings []domain.Listing) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// publishRetries bounds how long a booking request can stall on a flaky
// broker before the event is dropped.
const publishRetries = 3

type Service struct {
	bookings           repository.BookingRepository
	listings           repository.ListingRepository
	users              repository.UserRepository
	cache              Cache
	producer           Producer
	notificationsTopic string
	admissionLockTTL   time.Duration
	logger             *zap.Logger
}

type CreateBookingInput struct {
	ListingID int64
	UserID    int64
	CheckIn   time.Time
	CheckOut  time.Time
}

type ServiceOption func(*Service)

func WithNotificationsTopic(topic string) ServiceOption {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func NewService(
	bookings repository.BookingRepository,
	listings repository.ListingRepository,
	users repository.UserRepository,
	cache Cache,
	producer Producer,
	admissionLockTTL time.Duration,
	logger *zap.Logger,
	opts ...ServiceOption,
) *Service {
	service := &Service{
		bookings:         bookings,
		listings:         listings,
		users:            users,
		cache:            cache,
		producer:         producer,
		admissionLockTTL: admissionLockTTL,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking admits a new booking for the listing: date validation,
// self-booking guard, overlap check under the listing's admission lock,
// price computation, pending insert, then a best-effort created event.
func (s *Service) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	checkIn := domain.FloorToDay(input.CheckIn)
	checkOut := domain.FloorToDay(input.CheckOut)

	if !checkOut.After(checkIn) {
		return nil, domain.ErrInvalidDates
	}
	if checkIn.Before(domain.FloorToDay(time.Now())) {
		return nil, domain.ErrInvalidDates
	}

	listing, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID == input.UserID {
		return nil, domain.ErrSelfBooking
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireAdmissionLock(ctx, listing.ID, s.admissionLockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrListingBusy
		}
		locked = true
	}
	defer func() {
		if locked {
			_ = s.cache.ReleaseAdmissionLock(ctx, listing.ID)
		}
	}()

	if err := s.CheckAvailability(ctx, listing.ID, checkIn, checkOut); err != nil {
		return nil, err
	}

	totalPrice, err := TotalPriceCents(listing.NightlyPriceCents, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference:       uuid.NewString(),
		UserID:          input.UserID,
		ListingID:       listing.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		TotalPriceCents: totalPrice,
		Status:          domain.BookingStatusPending,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventBookingCreated, booking, listing)
	return booking, nil
}

// ConfirmBooking transitions a pending booking to confirmed. Only the
// listing owner may confirm.
func (s *Service) ConfirmBooking(ctx context.Context, bookingID, actorID int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	listing, err := s.listings.GetByID(ctx, current.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != actorID {
		return nil, domain.ErrNotAllowed
	}
	if !current.Status.CanTransitionTo(domain.BookingStatusConfirmed) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventBookingConfirmed, updated, listing)
	return updated, nil
}

// CancelBooking transitions a booking to cancelled. The requesting guest
// and the listing owner may cancel; cancelling an already terminal booking
// is an idempotent no-op.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorID int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	listing, err := s.listings.GetByID(ctx, current.ListingID)
	if err != nil {
		return nil, err
	}
	if actorID != current.UserID && actorID != listing.OwnerID {
		return nil, domain.ErrNotAllowed
	}
	if current.Status.IsTerminal() {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventBookingCancelled, updated, listing)
	return updated, nil
}

func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingWithListing, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// ExpirePendingBookings marks pending bookings whose check-in date has
// passed without confirmation as expired. Called from the worker sweep.
func (s *Service) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	expired, err := s.bookings.ExpirePendingBefore(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	for i := range expired {
		b := &expired[i]
		listing, err := s.listings.GetByID(ctx, b.ListingID)
		if err != nil {
			s.logger.Warn("listing lookup failed for expired booking",
				zap.Int64("booking_id", b.ID), zap.Error(err))
			listing = nil
		}
		s.publish(ctx, kafka.EventBookingExpired, b, listing)
	}
	return expired, nil
}

// publish sends a booking event on the notifications topic with a bounded
// retry. Exhausted retries are logged and swallowed: notification delivery
// never changes the outcome of the operation that triggered it.
func (s *Service) publish(ctx context.Context, eventType string, b *domain.Booking, listing *domain.Listing) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}

	event := kafka.BookingEvent{
		Type:            eventType,
		Reference:       b.Reference,
		BookingID:       b.ID,
		ListingID:       b.ListingID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		TotalPriceCents: b.TotalPriceCents,
		Status:          string(b.Status),
	}
	if listing != nil {
		event.ListingTitle = listing.Title
		event.ListingLocation = listing.Location
		if owner, err := s.users.GetByID(ctx, listing.OwnerID); err == nil {
			event.OwnerEmail = owner.Email
			event.OwnerPhone = owner.Phone
		} else {
			s.logger.Warn("owner lookup failed for booking event",
				zap.Int64("listing_id", listing.ID), zap.Error(err))
		}
	}
	if guest, err := s.users.GetByID(ctx, b.UserID); err == nil {
		event.GuestName = guest.Username
		event.GuestEmail = guest.Email
	} else {
		s.logger.Warn("guest lookup failed for booking event",
			zap.Int64("user_id", b.UserID), zap.Error(err))
	}

	if err := s.producer.PublishWithRetry(ctx, s.notificationsTopic, b.Reference, event, publishRetries); err != nil {
		s.logger.Warn("failed to publish booking event",
			zap.String("type", eventType),
			zap.String("reference", b.Reference),
			zap.Error(err))
	}
}

var _ BookingUseCase = (*Service)(nil)
