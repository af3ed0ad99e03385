package listings

import (
	"context"

	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/Domenick1991/staybooking/internal/repository"
)

type ListingUseCase interface {
	List(ctx context.Context, filter repository.ListingFilter) ([]domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

type ListingCache interface {
	GetListings(ctx context.Context) ([]domain.Listing, error)
	SetListings(ctx context.Context, listings []domain.Listing) error
}

type ListingService struct {
	repo  repository.ListingRepository
	cache ListingCache
}

func NewListingService(repo repository.ListingRepository, cache ListingCache) *ListingService {
	return &ListingService{repo: repo, cache: cache}
}

// List returns listings matching the filter. Only the unfiltered listing
// page goes through the cache; filtered searches always hit the database.
func (s *ListingService) List(ctx context.Context, filter repository.ListingFilter) ([]domain.Listing, error) {
	cacheable := filter.Search == "" && filter.Category == ""

	if cacheable && s.cache != nil {
		if cached, err := s.cache.GetListings(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	listings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if cacheable && s.cache != nil {
		_ = s.cache.SetListings(ctx, listings)
	}
	return listings, nil
}

func (s *ListingService) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

var _ ListingUseCase = (*ListingService)(nil)
