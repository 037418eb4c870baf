package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPError интерфейс для ошибок с HTTP статусом и сообщением
// Используется для избежания циклических зависимостей
type HTTPError interface {
	error
	StatusCode() int
	UserMessage() string
	GetContext() string
	Unwrap() error
}

// detailedError ошибка с уточнением для пользователя
type detailedError interface {
	UserDetail() string
}

// ErrorResponse структура ответа об ошибке
type ErrorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorResponse создает ответ об ошибке с текущим временем
func NewErrorResponse(message, detail, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Detail:    detail,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: requestID,
	}
}

// WriteJSONError записывает JSON ошибку, логирует её и прерывает цепочку
func WriteJSONError(c *gin.Context, statusCode int, message string) {
	reqID := GetRequestIDFromGin(c)
	slog.Error("HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.AbortWithStatusJSON(statusCode, NewErrorResponse(message, "", reqID))
}

// HandleHTTPError обрабатывает ошибку и возвращает JSON ответ
// Поддерживает HTTPError интерфейс для правильной обработки статус кодов и сообщений
func HandleHTTPError(c *gin.Context, err error) {
	reqID := GetRequestIDFromGin(c)

	statusCode := http.StatusInternalServerError
	message := "Internal server error"
	detail := ""

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
		message = httpErr.UserMessage()
		var d detailedError
		if errors.As(err, &d) {
			detail = d.UserDetail()
		}

		slog.Error("HTTP error",
			"error", httpErr.Unwrap(),
			"user_message", message,
			"context", httpErr.GetContext(),
			"status_code", statusCode,
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	} else {
		slog.Error("HTTP error",
			"error", err,
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(statusCode, NewErrorResponse(message, detail, reqID))
}
