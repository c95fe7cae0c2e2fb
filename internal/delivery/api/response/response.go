// Package response writes the envelope shared by every API response.
package response

import (
	"net/http"

	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every API response.
type Envelope struct {
	Data     any             `json:"data"`
	Message  string          `json:"message"`
	Severity entity.Severity `json:"severity"`
}

// Success writes a SUCCESS envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return write(c, statusCode, data, message, entity.SeveritySuccess)
}

// Created writes a 201 SUCCESS envelope.
func Created(c echo.Context, data any, message string) error {
	return write(c, http.StatusCreated, data, message, entity.SeveritySuccess)
}

// Warning writes a WARNING envelope. Data may carry the partial result of the operation.
func Warning(c echo.Context, statusCode int, data any, message string) error {
	return write(c, statusCode, data, message, entity.SeverityWarning)
}

// BadRequest writes a 400 WARNING envelope without data.
func BadRequest(c echo.Context, message string) error {
	return Warning(c, http.StatusBadRequest, nil, message)
}

// Error writes an ERROR envelope without data.
func Error(c echo.Context, statusCode int, message string) error {
	return write(c, statusCode, nil, message, entity.SeverityError)
}

// Unauthorized writes the 401 envelope used for every authentication failure.
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, domainerrors.ErrAccessDenied.Message())
}

// InternalServerError writes a 500 ERROR envelope with a generic message.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

// FromAppError writes the envelope described by an application error.
// Server-side failures never expose their message.
func FromAppError(c echo.Context, appErr domainerrors.AppError) error {
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		return InternalServerError(c)
	}

	return write(c, appErr.HTTPCode(), nil, appErr.Message(), appErr.Severity())
}

// HandleAppError answers application errors directly and hands anything else to the HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
		return FromAppError(c, appErr)
	}

	return errors.WithStack(err)
}

func write(c echo.Context, statusCode int, data any, message string, severity entity.Severity) error {
	return c.JSON(statusCode, Envelope{
		Data:     data,
		Message:  message,
		Severity: severity,
	})
}
