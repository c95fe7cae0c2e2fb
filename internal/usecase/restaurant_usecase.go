package usecase

import (
	"context"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantInput carries the editable fields of a restaurant.
type RestaurantInput struct {
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Address      string
	Latitude     *float64
	Longitude    *float64
	Phone        string
	OpensAt      string // "HH:MM" or "HH:MM:SS"
	ClosesAt     string
	AveragePrice *float64
	Category     string
	MenuURL      string
}

// NearbyQuery is a radius search around a point.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// RestaurantUsecase defines restaurant management and discovery.
type RestaurantUsecase interface {
	List(ctx context.Context) ([]*entity.Restaurant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error)
	ListActive(ctx context.Context) ([]*entity.Restaurant, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Restaurant, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Restaurant, error)
	ListByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Restaurant, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// ListNearby returns active restaurants within the radius, closest first.
	ListNearby(ctx context.Context, query *NearbyQuery) ([]*entity.NearbyRestaurant, error)

	// ShareQRCode renders a PNG QR code of the restaurant's public link.
	ShareQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)

	Create(ctx context.Context, input *RestaurantInput) (*entity.Restaurant, error)
	Update(ctx context.Context, id uuid.UUID, input *RestaurantInput) (*entity.Restaurant, error)
	ToggleStatus(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
}
