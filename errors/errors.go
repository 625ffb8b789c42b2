package errors

import (
	"errors"
	"fmt"
)

// ErrorCode define el código de error
type ErrorCode string

const (
	// Errores de validación
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField    ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat    ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidRoom      ErrorCode = "INVALID_ROOM_NUMBER"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone     ErrorCode = "INVALID_PHONE"

	// Condiciones de calidad de datos
	ErrCodeMissingRoomReference ErrorCode = "MISSING_ROOM_REFERENCE"
	ErrCodeAmbiguousCoverage    ErrorCode = "AMBIGUOUS_COVERAGE"

	// Errores de negocio
	ErrCodeConflict         ErrorCode = "RESERVATION_CONFLICT"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Errores de infraestructura
	ErrCodeUpstreamError ErrorCode = "UPSTREAM_ERROR"
	ErrCodeCacheError    ErrorCode = "CACHE_ERROR"
	ErrCodeSnapshotEmpty ErrorCode = "SNAPSHOT_EMPTY"
)

// AppError define el error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un AppError nuevo
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError verifica si un error es un AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extrae el AppError de un error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Errores de habitación
	ErrRoomNotFound = errors.New("habitación no encontrada")

	// Errores de reserva
	ErrReservationNotFound = errors.New("reserva no encontrada")
	ErrInvalidDateRange    = errors.New("la fecha de entrada debe ser anterior a la de salida")

	// Errores de snapshot
	ErrUpstreamUnavailable = errors.New("el backend no está disponible")
	ErrSnapshotEmpty       = errors.New("todavía no hay snapshot de datos")

	// Errores de validación
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrMissingRequired = errors.New("falta un campo obligatorio")
	ErrInvalidFormat   = errors.New("formato inválido")
)
