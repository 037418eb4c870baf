package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// GinCORSMiddleware настраивает CORS по списку разрешенных источников.
// "*" в списке разрешает любой источник. Пустой список оставляет только
// запросы с того же источника, заголовки CORS не выставляются.
func GinCORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "Accept", "Origin", "Cache-Control", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.AllowAllOrigins = true
			break
		}
	}
	if !config.AllowAllOrigins {
		config.AllowOrigins = allowedOrigins
		config.AllowCredentials = true
	}

	return cors.New(config)
}

// GinGzipMiddleware включает сжатие ответов
func GinGzipMiddleware() gin.HandlerFunc {
	return gzip.Gzip(gzip.BestSpeed)
}

// GinLoggerMiddleware логирует каждый запрос одной строкой через slog
func GinLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status_code", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"size", c.Writer.Size(),
			"request_id", GetRequestIDFromGin(c),
		}
		if err := c.Errors.Last(); err != nil {
			attrs = append(attrs, "error", err.Error())
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			slog.Error("request", attrs...)
		case status >= http.StatusBadRequest:
			slog.Warn("request", attrs...)
		default:
			slog.Info("request", attrs...)
		}
	}
}

// GinRecoveryMiddleware обрабатывает паники: 500 с request ID, стек в лог
func GinRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				reqID := GetRequestIDFromGin(c)

				slog.Error("panic recovered",
					"panic", fmt.Sprint(err),
					"stack", string(debug.Stack()),
					"request_id", reqID,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				// В ответ не отправляем stack trace
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					NewErrorResponse("Internal server error", "", reqID))
			}
		}()

		c.Next()
	}
}
