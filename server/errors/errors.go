package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError представляет ошибку приложения с HTTP статусом и контекстом
type AppError struct {
	Code    int    `json:"status_code"` // HTTP статус код
	Message string `json:"message"`     // Сообщение для пользователя
	Detail  string `json:"detail,omitempty"`
	Err     error  `json:"-"` // Внутренняя ошибка для логов, не сериализуется
	Context string `json:"-"` // Дополнительный контекст (операция, параметры)
}

// Error реализует интерфейс error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode возвращает HTTP статус код ошибки
// Реализует интерфейс middleware.HTTPError
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage возвращает сообщение для пользователя
// Реализует интерфейс middleware.HTTPError
func (e *AppError) UserMessage() string {
	return e.Message
}

// UserDetail возвращает уточнение для пользователя (может быть пустым)
func (e *AppError) UserDetail() string {
	return e.Detail
}

// GetContext возвращает контекст ошибки
// Реализует интерфейс middleware.HTTPError
func (e *AppError) GetContext() string {
	return e.Context
}

// WithContext добавляет контекст к ошибке
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// WithDetail добавляет уточнение, которое увидит пользователь
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

// NewNotFoundError создает ошибку 404 Not Found
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewValidationError создает ошибку 400 Bad Request
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewInternalError создает ошибку 500 Internal Server Error
// Для пользователя возвращается общее сообщение, детали только в логах
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     errors.Join(errors.New(message), err),
	}
}

// NewUnauthorizedError создает ошибку 401 Unauthorized
func NewUnauthorizedError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Message: message,
		Err:     err,
	}
}

// NewTooManyRequestsError создает ошибку 429 Too Many Requests
func NewTooManyRequestsError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusTooManyRequests,
		Message: message,
		Err:     err,
	}
}

// NewPayloadTooLargeError создает ошибку 413 Request Entity Too Large
func NewPayloadTooLargeError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusRequestEntityTooLarge,
		Message: message,
		Err:     err,
	}
}

// WrapError оборачивает существующую ошибку с контекстом
// Если ошибка уже AppError, добавляет контекст. Иначе создает новую InternalError
func WrapError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Detail:  appErr.Detail,
			Err:     appErr.Err,
			Context: appErr.Context,
		}
	}

	return NewInternalError(message, err)
}
