package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, listingID int64, start, end time.Time) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.BookingWithListing, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error)
}

const bookingColumns = `id, reference, user_id, listing_id, check_in, check_out, total_price_cents, status, created_at, updated_at`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Insert persists a new pending booking. The overlap re-check runs inside
// the same transaction as the insert, as a backstop for the admission lock:
// even if two requests slip past the lock, only one can commit.
func (r *PGBookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var conflicts int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM bookings
		WHERE listing_id=$1 AND status NOT IN ($2, $3)
		AND check_in < $4 AND $5 < check_out`,
		booking.ListingID, domain.BookingStatusCancelled, domain.BookingStatusExpired,
		booking.CheckOut, booking.CheckIn).Scan(&conflicts); err != nil {
		return err
	}
	if conflicts > 0 {
		return domain.ErrDatesUnavailable
	}

	booking.Status = domain.BookingStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (reference, user_id, listing_id, check_in, check_out, total_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		booking.Reference, booking.UserID, booking.ListingID, booking.CheckIn, booking.CheckOut, booking.TotalPriceCents, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) FindOverlapping(ctx context.Context, listingID int64, start, end time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE listing_id=$1 AND status NOT IN ($2, $3)
		AND check_in < $4 AND $5 < check_out
		ORDER BY check_in`,
		listingID, domain.BookingStatusCancelled, domain.BookingStatusExpired, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.BookingWithListing, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.reference, b.user_id, b.listing_id, b.check_in, b.check_out,
			b.total_price_cents, b.status, b.created_at, b.updated_at,
			l.title, l.location, l.owner_id, u.username
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		JOIN users u ON u.id = l.owner_id
		WHERE b.user_id=$1
		ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.BookingWithListing
	for rows.Next() {
		var b domain.BookingWithListing
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.ListingID, &b.CheckIn, &b.CheckOut,
			&b.TotalPriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt,
			&b.ListingTitle, &b.ListingLocation, &b.OwnerID, &b.OwnerName); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, status, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `UPDATE bookings SET status=$1, updated_at=now()
		WHERE status=$2 AND check_in <= $3
		RETURNING `+bookingColumns,
		domain.BookingStatusExpired, domain.BookingStatusPending, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.UserID, &b.ListingID, &b.CheckIn, &b.CheckOut,
		&b.TotalPriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.ListingID, &b.CheckIn, &b.CheckOut,
			&b.TotalPriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
