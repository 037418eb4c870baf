package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

const ginRequestIDKey = "request_id"

// RequestIDKey ключ для request ID в контексте
type RequestIDKey struct{}

// GinRequestIDMiddleware добавляет уникальный request ID к каждому запросу
func GinRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Генерируем или получаем request ID из заголовка
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Set(ginRequestIDKey, reqID)
		c.Request = c.Request.WithContext(SetRequestID(c.Request.Context(), reqID))
		c.Header(RequestIDHeader, reqID)

		c.Next()
	}
}

// GetRequestIDFromGin извлекает request ID из Gin context
func GetRequestIDFromGin(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if id := c.GetString(ginRequestIDKey); id != "" {
		return id
	}
	if c.Request != nil {
		return GetRequestID(c.Request.Context())
	}
	return ""
}

// GetRequestID извлекает request ID из контекста
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	reqID, ok := ctx.Value(RequestIDKey{}).(string)
	if !ok {
		return ""
	}
	return reqID
}

// SetRequestID устанавливает request ID в контекст
func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, reqID)
}
