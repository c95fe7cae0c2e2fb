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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the /favorites resource.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// CreateFavoriteRequest is the body of POST /favorites. UserID defaults to the caller.
type CreateFavoriteRequest struct {
	UserID       *uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
}

func (h *FavoriteHandler) List(c echo.Context) error {
	favorites, err := h.favoriteUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

func (h *FavoriteHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id", "favorite id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorite, "Favorite retrieved successfully")
}

func (h *FavoriteHandler) ListByUser(c echo.Context) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorites, err := h.favoriteUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

func (h *FavoriteHandler) ListByRestaurant(c echo.Context) error {
	restaurantID, err := paramUUID(c, "restaurantId", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorites, err := h.favoriteUC.ListByRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

func (h *FavoriteHandler) Exists(c echo.Context) error {
	userID, restaurantID, err := pairParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	exists, err := h.favoriteUC.Exists(c.Request().Context(), userID, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, existsResponse{Exists: exists}, "Favorite lookup completed")
}

func (h *FavoriteHandler) CountByUser(c echo.Context) error {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.favoriteUC.CountByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countResponse{Count: count}, "Favorites counted successfully")
}

func (h *FavoriteHandler) CountByRestaurant(c echo.Context) error {
	restaurantID, err := paramUUID(c, "restaurantId", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.favoriteUC.CountByRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countResponse{Count: count}, "Favorites counted successfully")
}

func (h *FavoriteHandler) Create(c echo.Context) error {
	var req CreateFavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	userID := uuid.Nil
	if req.UserID != nil {
		userID = *req.UserID
	} else if principal, ok := deliverycontext.GetPrincipal(c); ok {
		userID = principal.UserID
	}

	favorite, err := h.favoriteUC.Create(c.Request().Context(), userID, req.RestaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, favorite, "Favorite added successfully")
}

func (h *FavoriteHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id", "favorite id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed successfully")
}

func (h *FavoriteHandler) RemoveByUserAndRestaurant(c echo.Context) error {
	userID, restaurantID, err := pairParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.RemoveByUserAndRestaurant(c.Request().Context(), userID, restaurantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed successfully")
}

func pairParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := paramUUID(c, "userId", "user id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	restaurantID, err := paramUUID(c, "restaurantId", "restaurant id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, restaurantID, nil
}
