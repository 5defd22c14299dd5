// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/errors"

	"github.com/labstack/echo/v4"
)

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success renders a success envelope.
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// OK is Success with 200.
func OK(c echo.Context, message string, data any) error {
	return Success(c, http.StatusOK, message, data)
}

// Created is Success with 201.
func Created(c echo.Context, message string, data any) error {
	return Success(c, http.StatusCreated, message, data)
}

// Failure renders a failure envelope. Data is dropped for 5xx responses and
// authentication failures.
func Failure(c echo.Context, statusCode int, message string, data any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		data = nil
	}

	return c.JSON(statusCode, Envelope{
		Status:  StatusFailure,
		Message: message,
		Data:    data,
	})
}

// AppError renders err when it is a domain AppError and returns false
// otherwise, leaving the response untouched.
func AppError(c echo.Context, err error) (bool, error) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false, nil
	}

	var data any
	var validation *ValidationError
	if errors.As(err, &validation) {
		data = validation.Fields
	}

	return true, Failure(c, appErr.HTTPCode(), appErr.Message(), data)
}

// ValidationError is an ErrValidationFailed carrying the offending fields.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a validation failure for fields.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return domainerrors.ErrValidationFailed.Error()
}

func (e *ValidationError) HTTPCode() int {
	return domainerrors.ErrValidationFailed.HTTPCode()
}

func (e *ValidationError) ErrorCode() string {
	return domainerrors.ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return domainerrors.ErrValidationFailed.Message()
}

func (e *ValidationError) Details() string {
	return ""
}

// Is makes ValidationError match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return errors.Is(domainerrors.ErrValidationFailed, target)
}
