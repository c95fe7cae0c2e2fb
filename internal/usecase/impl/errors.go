package impl

import (
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/errors"
)

// translateRepoError turns repository sentinels into application errors.
// AppErrors pass through and anything else becomes a database error.
func translateRepoError(err error, details string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrEmailAlreadyExists):
		return domainerrors.ErrEmailAlreadyExists
	case errors.Is(err, repository.ErrRestaurantNotFound):
		return domainerrors.ErrRestaurantNotFound
	case errors.Is(err, repository.ErrRatingNotFound):
		return domainerrors.ErrRatingNotFound
	case errors.Is(err, repository.ErrRatingAlreadyExists):
		return domainerrors.ErrRatingAlreadyExists
	case errors.Is(err, repository.ErrFavoriteNotFound):
		return domainerrors.ErrFavoriteNotFound
	case errors.Is(err, repository.ErrFavoriteAlreadyExists):
		return domainerrors.ErrFavoriteAlreadyExists
	case errors.Is(err, repository.ErrNotificationNotFound):
		return domainerrors.ErrNotificationNotFound
	case errors.Is(err, repository.ErrPhotoNotFound):
		return domainerrors.ErrPhotoNotFound
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
