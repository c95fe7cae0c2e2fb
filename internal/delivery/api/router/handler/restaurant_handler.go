package handler

import (
	"log/slog"
	"net/http"

	"food/internal/delivery/api/response"
	deliverycontext "food/internal/delivery/context"
	"food/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler serves the /restaurants resource.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// RestaurantRequest is the body of create and update. On create OwnerID defaults
// to the caller; on update it may only repeat the current owner.
type RestaurantRequest struct {
	OwnerID      *uuid.UUID `json:"owner_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Address      string     `json:"address"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Phone        string     `json:"phone"`
	OpensAt      string     `json:"opens_at"`
	ClosesAt     string     `json:"closes_at"`
	AveragePrice *float64   `json:"average_price"`
	Category     string     `json:"category"`
	MenuURL      string     `json:"menu_url"`
}

type SearchRequest struct {
	Name string `query:"name" validate:"required"`
}

type PriceRangeRequest struct {
	Min *float64 `query:"min" validate:"required"`
	Max *float64 `query:"max" validate:"required"`
}

type NearbyRequest struct {
	Latitude  *float64 `query:"lat" validate:"required"`
	Longitude *float64 `query:"lng" validate:"required"`
	RadiusKm  float64  `query:"radiusKm"`
}

// defaultNearbyRadiusKm applies when radiusKm is omitted.
const defaultNearbyRadiusKm = 5

func (r *RestaurantRequest) toInput() *usecase.RestaurantInput {
	input := &usecase.RestaurantInput{
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Phone:        r.Phone,
		OpensAt:      r.OpensAt,
		ClosesAt:     r.ClosesAt,
		AveragePrice: r.AveragePrice,
		Category:     r.Category,
		MenuURL:      r.MenuURL,
	}
	if r.OwnerID != nil {
		input.OwnerID = *r.OwnerID
	}

	return input
}

func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.restaurantUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

func (h *RestaurantHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.restaurantUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant retrieved successfully")
}

func (h *RestaurantHandler) ListByOwner(c echo.Context) error {
	ownerID, err := paramUUID(c, "ownerId", "owner id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	restaurants, err := h.restaurantUC.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

func (h *RestaurantHandler) ListActive(c echo.Context) error {
	restaurants, err := h.restaurantUC.ListActive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Active restaurants retrieved successfully")
}

func (h *RestaurantHandler) ListByCategory(c echo.Context) error {
	restaurants, err := h.restaurantUC.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

func (h *RestaurantHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurants, err := h.restaurantUC.SearchByName(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

func (h *RestaurantHandler) ListByPriceRange(c echo.Context) error {
	var req PriceRangeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurants, err := h.restaurantUC.ListByPriceRange(c.Request().Context(), *req.Min, *req.Max)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

func (h *RestaurantHandler) ListNearby(c echo.Context) error {
	var req NearbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if c.QueryParam("radiusKm") == "" {
		req.RadiusKm = defaultNearbyRadiusKm
	}

	nearby, err := h.restaurantUC.ListNearby(c.Request().Context(), &usecase.NearbyQuery{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		RadiusKm:  req.RadiusKm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearby restaurants retrieved successfully")
}

// ShareQRCode answers with the PNG itself rather than an envelope.
func (h *RestaurantHandler) ShareQRCode(c echo.Context) error {
	id, err := paramUUID(c, "id", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.restaurantUC.ShareQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *RestaurantHandler) Create(c echo.Context) error {
	var req RestaurantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := req.toInput()
	if principal, ok := deliverycontext.GetPrincipal(c); ok && input.OwnerID == uuid.Nil {
		input.OwnerID = principal.UserID
	}

	restaurant, err := h.restaurantUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, restaurant, "Restaurant created successfully")
}

func (h *RestaurantHandler) Update(c echo.Context) error {
	id, err := paramUUID(c, "id", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RestaurantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.restaurantUC.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated successfully")
}

func (h *RestaurantHandler) ToggleStatus(c echo.Context) error {
	id, err := paramUUID(c, "id", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.restaurantUC.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, statusMessage("Restaurant", restaurant.Active))
}
