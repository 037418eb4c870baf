package common

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pricecatalog/server/middleware"
)

// BaseHandlerInterface интерфейс для базового обработчика
// Используется для разрыва циклических зависимостей
type BaseHandlerInterface interface {
	SendJSONResponse(c *gin.Context, statusCode int, data interface{})
	SendJSONError(c *gin.Context, statusCode int, message string)
	HandleHTTPError(c *gin.Context, err error)
}

// BaseHandlerImpl реализация BaseHandlerInterface через middleware
// Может использоваться всеми handlers для единообразия
type BaseHandlerImpl struct{}

// NewBaseHandlerImpl создает новую реализацию BaseHandlerInterface
func NewBaseHandlerImpl() *BaseHandlerImpl {
	return &BaseHandlerImpl{}
}

func (h *BaseHandlerImpl) SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func (h *BaseHandlerImpl) SendJSONError(c *gin.Context, statusCode int, message string) {
	middleware.WriteJSONError(c, statusCode, message)
}

func (h *BaseHandlerImpl) HandleHTTPError(c *gin.Context, err error) {
	middleware.HandleHTTPError(c, err)
}

// QueryInt читает целый параметр запроса; пустое или неверное значение
// дает def, результат ограничивается диапазоном [lo, hi]
func QueryInt(c *gin.Context, key string, def, lo, hi int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
