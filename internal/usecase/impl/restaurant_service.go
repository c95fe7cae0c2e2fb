package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/domain/service"
	"food/internal/errors"
	"food/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const metersPerKilometer = 1000.0

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
	publisher      service.EventPublisher
	qrCode         service.QRCodeService
	logger         *slog.Logger
	now            func() time.Time
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	UserRepo       repository.UserRepository
	Publisher      service.EventPublisher
	QRCode         service.QRCodeService
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		userRepo:       params.UserRepo,
		publisher:      params.Publisher,
		qrCode:         params.QRCode,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *restaurantService) List(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.FindAll(ctx)

	return restaurants, translateRepoError(err, "failed to list restaurants")
}

func (srv *restaurantService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}

	return restaurant, nil
}

func (srv *restaurantService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.FindByOwner(ctx, ownerID)

	return restaurants, translateRepoError(err, "failed to list restaurants by owner")
}

func (srv *restaurantService) ListActive(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.FindActive(ctx)

	return restaurants, translateRepoError(err, "failed to list active restaurants")
}

func (srv *restaurantService) ListByCategory(ctx context.Context, category string) ([]*entity.Restaurant, error) {
	if isBlank(category) {
		return nil, invalid("Category is required")
	}

	restaurants, err := srv.restaurantRepo.FindByCategory(ctx, strings.TrimSpace(category))

	return restaurants, translateRepoError(err, "failed to list restaurants by category")
}

func (srv *restaurantService) SearchByName(ctx context.Context, name string) ([]*entity.Restaurant, error) {
	if isBlank(name) {
		return nil, invalid("Search term is required")
	}

	restaurants, err := srv.restaurantRepo.SearchByName(ctx, strings.TrimSpace(name))

	return restaurants, translateRepoError(err, "failed to search restaurants")
}

func (srv *restaurantService) ListByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Restaurant, error) {
	switch {
	case minPrice < 0 || maxPrice < 0:
		return nil, invalid("Prices must not be negative")
	case minPrice > maxPrice:
		return nil, invalid("Minimum price must not exceed maximum price")
	}

	restaurants, err := srv.restaurantRepo.FindByPriceRange(ctx, minPrice, maxPrice)

	return restaurants, translateRepoError(err, "failed to list restaurants by price")
}

func (srv *restaurantService) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	count, err := srv.restaurantRepo.CountByOwner(ctx, ownerID)

	return count, translateRepoError(err, "failed to count restaurants")
}

// ListNearby filters in memory with the haversine distance.
func (srv *restaurantService) ListNearby(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.NearbyRestaurant, error) {
	switch {
	case !finite(query.Latitude, query.Longitude, query.RadiusKm):
		return nil, invalid("Coordinates and radius must be finite numbers")
	case query.Latitude < -90 || query.Latitude > 90:
		return nil, invalid("Latitude must be between -90 and 90")
	case query.Longitude < -180 || query.Longitude > 180:
		return nil, invalid("Longitude must be between -180 and 180")
	case query.RadiusKm <= 0:
		return nil, invalid("Radius must be greater than 0")
	}

	candidates, err := srv.restaurantRepo.FindActiveWithLocation(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list located restaurants")
	}

	origin := orb.Point{query.Longitude, query.Latitude}
	nearby := make([]*entity.NearbyRestaurant, 0, len(candidates))
	for _, restaurant := range candidates {
		if !restaurant.HasLocation() {
			continue
		}

		distanceKm := geo.DistanceHaversine(origin, orb.Point{*restaurant.Longitude, *restaurant.Latitude}) / metersPerKilometer
		if distanceKm <= query.RadiusKm {
			nearby = append(nearby, &entity.NearbyRestaurant{Restaurant: restaurant, DistanceKm: distanceKm})
		}
	}

	slices.SortFunc(nearby, func(a, b *entity.NearbyRestaurant) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return nearby, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func (srv *restaurantService) ShareQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.restaurantRepo.FindByID(ctx, id); err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}

	png, err := srv.qrCode.GenerateRestaurantQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to render QR code", slog.Any("restaurantID", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to render QR code")
	}

	return png, nil
}

// Create stores the restaurant and announces it. A failed announcement only logs.
func (srv *restaurantService) Create(ctx context.Context, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	owner, err := srv.resolveOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	restaurant := &entity.Restaurant{
		ID:           uuid.New(),
		OwnerID:      owner.ID,
		RegisteredAt: srv.now(),
		Active:       true,
	}
	if err := apply(restaurant, input); err != nil {
		return nil, err
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, translateRepoError(err, "failed to create restaurant")
	}

	srv.log(ctx).Info("Restaurant created", slog.Any("restaurantID", restaurant.ID), slog.Any("ownerID", restaurant.OwnerID))
	srv.announce(ctx, restaurant)

	return restaurant, nil
}

func (srv *restaurantService) Update(ctx context.Context, id uuid.UUID, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}

	if input.OwnerID != uuid.Nil && input.OwnerID != restaurant.OwnerID {
		return nil, domainerrors.ErrOwnerImmutable
	}
	if err := apply(restaurant, input); err != nil {
		return nil, err
	}

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, translateRepoError(err, "failed to update restaurant")
	}

	return restaurant, nil
}

func (srv *restaurantService) ToggleStatus(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}

	restaurant.Active = !restaurant.Active
	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, translateRepoError(err, "failed to update restaurant status")
	}

	srv.log(ctx).Info("Restaurant status changed", slog.Any("restaurantID", restaurant.ID), slog.Bool("active", restaurant.Active))

	return restaurant, nil
}

func (srv *restaurantService) resolveOwner(ctx context.Context, ownerID uuid.UUID) (*entity.User, error) {
	if ownerID == uuid.Nil {
		return nil, invalid("Owner id is required")
	}

	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find restaurant owner")
	}
	if owner.UserType != entity.UserTypeRestaurantOwner {
		return nil, domainerrors.ErrOwnerTypeRequired
	}

	return owner, nil
}

// apply validates the mutable fields in order and copies them onto the restaurant.
// The owner is set once at creation.
func apply(restaurant *entity.Restaurant, input *usecase.RestaurantInput) error {
	opensAt, closesAt, err := validateRestaurantFields(input)
	if err != nil {
		return err
	}

	restaurant.Name = strings.TrimSpace(input.Name)
	restaurant.Description = input.Description
	restaurant.Address = strings.TrimSpace(input.Address)
	restaurant.Latitude = input.Latitude
	restaurant.Longitude = input.Longitude
	restaurant.Phone = input.Phone
	restaurant.OpensAt = opensAt
	restaurant.ClosesAt = closesAt
	restaurant.AveragePrice = input.AveragePrice
	restaurant.Category = strings.TrimSpace(input.Category)
	restaurant.MenuURL = strings.TrimSpace(input.MenuURL)

	return nil
}

func validateRestaurantFields(input *usecase.RestaurantInput) (opensAt, closesAt string, err error) {
	switch {
	case isBlank(input.Name):
		return "", "", invalid("Restaurant name is required")
	case tooLong(input.Name, maxRestaurantName):
		return "", "", invalid("Restaurant name must not exceed %d characters", maxRestaurantName)
	case tooLong(input.Description, maxDescriptionLength):
		return "", "", invalid("Description must not exceed %d characters", maxDescriptionLength)
	case isBlank(input.Address):
		return "", "", invalid("Address is required")
	case tooLong(input.Address, maxAddressLength):
		return "", "", invalid("Address must not exceed %d characters", maxAddressLength)
	case input.Latitude != nil && (*input.Latitude < -90 || *input.Latitude > 90):
		return "", "", invalid("Latitude must be between -90 and 90")
	case input.Longitude != nil && (*input.Longitude < -180 || *input.Longitude > 180):
		return "", "", invalid("Longitude must be between -180 and 180")
	case !validPhone(input.Phone):
		return "", "", invalid("Invalid phone number format")
	case input.AveragePrice != nil && *input.AveragePrice < 0:
		return "", "", invalid("Average price must not be negative")
	case tooLong(input.Category, maxCategoryLength):
		return "", "", invalid("Category must not exceed %d characters", maxCategoryLength)
	}

	opensAt, ok := normalizeTimeOfDay(input.OpensAt)
	if !ok {
		return "", "", invalid("Opening time must use the HH:MM format")
	}
	closesAt, ok = normalizeTimeOfDay(input.ClosesAt)
	if !ok {
		return "", "", invalid("Closing time must use the HH:MM format")
	}

	return opensAt, closesAt, nil
}

func (srv *restaurantService) announce(ctx context.Context, restaurant *entity.Restaurant) {
	event := &service.RestaurantCreatedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		RestaurantID: restaurant.ID.String(),
		OwnerID:      restaurant.OwnerID.String(),
		Name:         restaurant.Name,
		Category:     restaurant.Category,
	}

	if err := srv.publisher.PublishRestaurantCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish restaurant created event",
			slog.Any("restaurantID", restaurant.ID),
			slog.Any("error", err),
		)
	}
}
