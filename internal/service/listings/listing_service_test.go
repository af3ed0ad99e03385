package listings

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/Domenick1991/staybooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]domain.Listing, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) GetListings(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockListingCache) SetListings(ctx context.Context, listings []domain.Listing) error {
	args := m.Called(ctx, listings)
	return args.Error(0)
}

func TestListingService_List_CacheHit(t *testing.T) {
	mockRepo := &MockListingRepository{}
	mockCache := &MockListingCache{}
	service := NewListingService(mockRepo, mockCache)

	ctx := context.Background()
	cached := []domain.Listing{{ID: 1, Title: "Seaside villa"}}
	mockCache.On("GetListings", ctx).Return(cached, nil).Once()

	result, err := service.List(ctx, repository.ListingFilter{})

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	mockRepo.AssertNotCalled(t, "List")
}

func TestListingService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockListingRepository{}
	mockCache := &MockListingCache{}
	service := NewListingService(mockRepo, mockCache)

	ctx := context.Background()
	fromDB := []domain.Listing{{ID: 1, Title: "Seaside villa"}, {ID: 2, Title: "City loft"}}
	mockCache.On("GetListings", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx, repository.ListingFilter{}).Return(fromDB, nil).Once()
	mockCache.On("SetListings", ctx, fromDB).Return(nil).Once()

	result, err := service.List(ctx, repository.ListingFilter{})

	assert.NoError(t, err)
	assert.Equal(t, fromDB, result)
	mockCache.AssertExpectations(t)
}

func TestListingService_List_FilteredBypassesCache(t *testing.T) {
	mockRepo := &MockListingRepository{}
	mockCache := &MockListingCache{}
	service := NewListingService(mockRepo, mockCache)

	ctx := context.Background()
	filter := repository.ListingFilter{Search: "lisbon"}
	fromDB := []domain.Listing{{ID: 1, Title: "Seaside villa", Location: "Lisbon"}}
	mockRepo.On("List", ctx, filter).Return(fromDB, nil).Once()

	result, err := service.List(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, fromDB, result)
	mockCache.AssertNotCalled(t, "GetListings")
	mockCache.AssertNotCalled(t, "SetListings")
}

func TestListingService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockListingRepository{}
	service := NewListingService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrListingNotFound).Once()

	listing, err := service.GetByID(ctx, 99)

	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListingService_List_RepoError(t *testing.T) {
	mockRepo := &MockListingRepository{}
	service := NewListingService(mockRepo, nil)

	ctx := context.Background()
	expectedErr := errors.New("database error")
	mockRepo.On("List", ctx, repository.ListingFilter{}).Return([]domain.Listing(nil), expectedErr).Once()

	result, err := service.List(ctx, repository.ListingFilter{})

	assert.Nil(t, result)
	assert.Equal(t, expectedErr, err)
}
