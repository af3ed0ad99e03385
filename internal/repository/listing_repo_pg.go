package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingFilter narrows the listing search. Zero values mean no filter.
type ListingFilter struct {
	Search   string
	Category string
}

type ListingRepository interface {
	List(ctx context.Context, filter ListingFilter) ([]domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

const listingColumns = `id, owner_id, title, description, category, location, country, nightly_price_cents, created_at, updated_at`

type PGListingRepository struct {
	db *pgxpool.Pool
}

func NewListingRepository(db *pgxpool.Pool) ListingRepository {
	return &PGListingRepository{db: db}
}

func (r *PGListingRepository) List(ctx context.Context, filter ListingFilter) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE 1=1`
	args := []interface{}{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += ` AND location ILIKE $1`
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		if len(args) == 1 {
			query += ` AND category = $1`
		} else {
			query += ` AND category = $2`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Category, &l.Location, &l.Country,
			&l.NightlyPriceCents, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *PGListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id=$1`, id)
	var l domain.Listing
	if err := row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Category, &l.Location, &l.Country,
		&l.NightlyPriceCents, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

var _ ListingRepository = (*PGListingRepository)(nil)
