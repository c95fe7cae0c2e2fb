package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"food/config"
	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/constants"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/domain/service"
	"food/internal/errors"
	"food/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const imageContentTypePrefix = "image/"

// photoService implements the PhotoUsecase interface.
type photoService struct {
	txManager      repository.TransactionManager
	photoRepo      repository.PhotoRepository
	restaurantRepo repository.RestaurantRepository
	storage        service.ImageStorage
	maxUploadSize  int64
	logger         *slog.Logger
	now            func() time.Time
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PhotoRepo      repository.PhotoRepository
	RestaurantRepo repository.RestaurantRepository
	Storage        service.ImageStorage
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &photoService{
		txManager:      params.TxManager,
		photoRepo:      params.PhotoRepo,
		restaurantRepo: params.RestaurantRepo,
		storage:        params.Storage,
		maxUploadSize:  maxUploadSize,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the image, then the record. The stored object is removed again when the record cannot be saved.
func (srv *photoService) Upload(ctx context.Context, input *usecase.UploadPhotoInput) (*entity.Photo, error) {
	file := input.File
	switch {
	case file == nil || file.Size == 0 || file.Open == nil:
		return nil, invalid("Photo file is required")
	case !strings.HasPrefix(strings.ToLower(file.ContentType), imageContentTypePrefix):
		return nil, invalid("Only image files are allowed")
	case srv.maxUploadSize > 0 && file.Size > srv.maxUploadSize:
		return nil, invalid("Photo must not exceed %d bytes", srv.maxUploadSize)
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID); err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}
	if tooLong(input.Description, maxPhotoDescription) {
		return nil, invalid("Description must not exceed %d characters", maxPhotoDescription)
	}

	url, err := srv.store(ctx, input.RestaurantID, file)
	if err != nil {
		return nil, err
	}

	photo := &entity.Photo{
		ID:           uuid.New(),
		RestaurantID: input.RestaurantID,
		URL:          url,
		Description:  strings.TrimSpace(input.Description),
		IsCover:      input.IsCover,
		UploadedAt:   srv.now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.NewPhotoRepository()

		if photo.IsCover {
			if err := unsetCover(ctx, photoRepo, photo.RestaurantID, photo.ID); err != nil {
				return err
			}
		}

		return photoRepo.Create(ctx, photo)
	})
	if err != nil {
		if deleteErr := srv.storage.Delete(ctx, url); deleteErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned photo object", slog.String("url", url), slog.Any("error", deleteErr))
		}

		return nil, translateRepoError(err, "failed to save photo")
	}

	srv.log(ctx).Info("Photo uploaded", slog.Any("photoID", photo.ID), slog.Any("restaurantID", photo.RestaurantID), slog.Bool("cover", photo.IsCover))

	return photo, nil
}

func (srv *photoService) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Photo, error) {
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}

	photos, err := srv.photoRepo.FindByRestaurant(ctx, restaurantID)

	return photos, translateRepoError(err, "failed to list photos")
}

func (srv *photoService) SetCover(ctx context.Context, photoID uuid.UUID) (*entity.Photo, error) {
	var cover *entity.Photo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.NewPhotoRepository()

		photo, err := photoRepo.FindByID(ctx, photoID)
		if err != nil {
			return err
		}
		if err := unsetCover(ctx, photoRepo, photo.RestaurantID, photo.ID); err != nil {
			return err
		}

		photo.IsCover = true
		if err := photoRepo.Update(ctx, photo); err != nil {
			return err
		}
		cover = photo

		return nil
	})
	if err != nil {
		return nil, translateRepoError(err, "failed to set cover photo")
	}

	return cover, nil
}

func (srv *photoService) Delete(ctx context.Context, photoID uuid.UUID) error {
	photo, err := srv.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return translateRepoError(err, "failed to find photo")
	}

	if err := srv.storage.Delete(ctx, photo.URL); err != nil {
		srv.log(ctx).Error("Failed to delete photo object", slog.Any("photoID", photo.ID), slog.Any("error", err))

		return domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	return translateRepoError(srv.photoRepo.Delete(ctx, photo.ID), "failed to delete photo")
}

func (srv *photoService) store(ctx context.Context, restaurantID uuid.UUID, file *entity.PhotoUpload) (string, error) {
	content, err := file.Open()
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInternalError, "failed to open uploaded file")
	}
	defer content.Close()

	folder := path.Join(constants.PhotoFolderPrefix, restaurantID.String())
	url, err := srv.storage.Upload(ctx, folder, file.Filename, file.ContentType, content)
	if err != nil {
		srv.log(ctx).Error("Failed to store photo", slog.Any("restaurantID", restaurantID), slog.Any("error", err))

		return "", domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	return url, nil
}

// unsetCover clears the current cover of the restaurant unless it is keepID.
func unsetCover(ctx context.Context, photoRepo repository.PhotoRepository, restaurantID, keepID uuid.UUID) error {
	current, err := photoRepo.FindCover(ctx, restaurantID)
	if errors.Is(err, repository.ErrPhotoNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if current.ID == keepID {
		return nil
	}

	current.IsCover = false

	return photoRepo.Update(ctx, current)
}
