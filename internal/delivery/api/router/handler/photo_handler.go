package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"food/internal/delivery/api/response"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/errors"
	"food/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Multipart form fields of POST /photos/upload.
const (
	formFieldFile         = "file"
	formFieldRestaurantID = "restaurantId"
	formFieldDescription  = "description"
	formFieldIsCover      = "isCover"
)

// PhotoHandlerParams holds dependencies for PhotoHandler, injected by Fx.
type PhotoHandlerParams struct {
	fx.In

	PhotoUC usecase.PhotoUsecase
	Logger  *slog.Logger
}

// PhotoHandler serves restaurant photos.
type PhotoHandler struct {
	photoUC usecase.PhotoUsecase
	logger  *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler.
func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{
		photoUC: params.PhotoUC,
		logger:  params.Logger,
	}
}

func (h *PhotoHandler) Upload(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.FormValue(formFieldRestaurantID))
	if err != nil {
		return response.BadRequest(c, "Invalid restaurant id: "+c.FormValue(formFieldRestaurantID))
	}

	isCover := false
	if raw := c.FormValue(formFieldIsCover); raw != "" {
		if isCover, err = strconv.ParseBool(raw); err != nil {
			return response.BadRequest(c, "isCover must be true or false")
		}
	}

	upload, err := formUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	photo, err := h.photoUC.Upload(c.Request().Context(), &usecase.UploadPhotoInput{
		RestaurantID: restaurantID,
		File:         upload,
		Description:  c.FormValue(formFieldDescription),
		IsCover:      isCover,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, photo, "Photo uploaded successfully")
}

func (h *PhotoHandler) ListByRestaurant(c echo.Context) error {
	restaurantID, err := paramUUID(c, "id", "restaurant id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	photos, err := h.photoUC.ListByRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, photos, "Photos retrieved successfully")
}

func (h *PhotoHandler) SetCover(c echo.Context) error {
	id, err := paramUUID(c, "id", "photo id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	photo, err := h.photoUC.SetCover(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, photo, "Cover photo updated successfully")
}

func (h *PhotoHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id", "photo id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.photoUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Photo deleted successfully")
}

// formUpload returns nil when the request carries no file part.
func formUpload(c echo.Context) (*entity.PhotoUpload, error) {
	header, err := c.FormFile(formFieldFile)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewValidationError("Invalid multipart form")
	}

	return &entity.PhotoUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Open:        openPart(header),
	}, nil
}

func openPart(header *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		file, err := header.Open()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return file, nil
	}
}
