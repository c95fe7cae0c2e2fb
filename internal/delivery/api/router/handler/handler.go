// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"fmt"

	"food/internal/delivery/api/validator"
	deliverycontext "food/internal/delivery/context"
	domainerrors "food/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// paramUUID parses a path parameter as an id. label names it in the error message.
func paramUUID(c echo.Context, name, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(fmt.Sprintf("Invalid %s: %s", label, c.Param(name)))
	}

	return id, nil
}

// ownAccountParam parses the user id path parameter and requires it to be the caller.
func ownAccountParam(c echo.Context) (uuid.UUID, error) {
	id, err := paramUUID(c, "id", "user id")
	if err != nil {
		return uuid.Nil, err
	}

	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok || principal.UserID != id {
		return uuid.Nil, domainerrors.ErrForbidden
	}

	return id, nil
}

// bindAndValidate binds the request into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.NewValidationError(validator.Message(err))
	}

	return nil
}

// countResponse wraps counters so the data field stays an object.
type countResponse struct {
	Count int64 `json:"count"`
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

func statusMessage(subject string, active bool) string {
	if active {
		return subject + " activated successfully"
	}

	return subject + " deactivated successfully"
}
