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

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// RatingHandler serves the /ratings resource.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler.
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// CreateRatingRequest is the body of POST /ratings. UserID defaults to the caller.
type CreateRatingRequest struct {
	UserID        *uuid.UUID `json:"user_id"`
	RestaurantID  uuid.UUID  `json:"restaurant_id"`
	FoodScore     int        `json:"food_score"`
	ServiceScore  int        `json:"service_score"`
	AmbienceScore int        `json:"ambience_score"`
	Comment       string     `json:"comment"`
}

type UpdateRatingRequest struct {
	FoodScore     int    `json:"food_score"`
	ServiceScore  int    `json:"service_score"`
	AmbienceScore int    `json:"ambience_score"`
	Comment       string `json:"comment"`
}

func (h *RatingHandler) List(c echo.Context) error {
	ratings, err := h.ratingUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved successfully")
}

func (h *RatingHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id", "rating id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rating, err := h.ratingUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rating, "Rating retrieved successfully")
}

func (h *RatingHandler) ListByRestaurant(c echo.Context) error {
	restaurantID, err := paramUUID(c, "id", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ratings, err := h.ratingUC.ListByRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved successfully")
}

func (h *RatingHandler) RestaurantSummary(c echo.Context) error {
	restaurantID, err := paramUUID(c, "id", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.ratingUC.RestaurantSummary(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Rating summary retrieved successfully")
}

func (h *RatingHandler) ListByUser(c echo.Context) error {
	userID, err := paramUUID(c, "id", "user id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ratings, err := h.ratingUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved successfully")
}

func (h *RatingHandler) Create(c echo.Context) error {
	var req CreateRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateRatingInput{
		RestaurantID:  req.RestaurantID,
		FoodScore:     req.FoodScore,
		ServiceScore:  req.ServiceScore,
		AmbienceScore: req.AmbienceScore,
		Comment:       req.Comment,
	}
	if req.UserID != nil {
		input.UserID = *req.UserID
	} else if principal, ok := deliverycontext.GetPrincipal(c); ok {
		input.UserID = principal.UserID
	}

	rating, err := h.ratingUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, rating, "Rating created successfully")
}

func (h *RatingHandler) Update(c echo.Context) error {
	id, err := paramUUID(c, "id", "rating id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rating, err := h.ratingUC.Update(c.Request().Context(), id, &usecase.UpdateRatingInput{
		FoodScore:     req.FoodScore,
		ServiceScore:  req.ServiceScore,
		AmbienceScore: req.AmbienceScore,
		Comment:       req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rating, "Rating updated successfully")
}

func (h *RatingHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id", "rating id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.ratingUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Rating deleted successfully")
}
