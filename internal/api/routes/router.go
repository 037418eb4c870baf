package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pricecatalog/docs"
	cataloghandler "pricecatalog/internal/api/handlers/catalog"
	importhandler "pricecatalog/internal/api/handlers/importing"
	"pricecatalog/server/middleware"
)

// Handlers HTTP обработчики, которые регистрирует роутер
type Handlers struct {
	Catalog   *cataloghandler.Handler
	Importing *importhandler.Handler
}

// Options задают опции регистрации маршрутов
type Options struct {
	// AllowedOrigins разрешенные источники CORS, "*" разрешает все
	AllowedOrigins []string
	// AdminPassword Bearer токен для загрузки и истории импортов
	AdminPassword string
	// UploadRateLimit загрузок в минуту с одного адреса
	UploadRateLimit int
	// Ping проверка хранилища для /health, может быть nil
	Ping func(ctx context.Context) error
	// SwaggerHost адрес для документации, пустой означает текущий хост
	SwaggerHost string
}

// NewRouter создает gin роутер со всеми маршрутами приложения
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	// Метки моделей и деталей содержат "/" ("12/12Pro"); клиент кодирует их
	// как %2F, поэтому маршрут сопоставляется по сырому пути
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware(opts.AllowedOrigins))
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())

	router.GET("/health", healthHandler(opts.Ping))
	registerSwaggerRoutes(router, opts.SwaggerHost)

	api := router.Group("/api")

	if h.Importing != nil {
		registerImportRoutes(api, h.Importing, opts)
	}
	if h.Catalog != nil {
		registerCatalogRoutes(api, h.Catalog)
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.WriteJSONError(c, http.StatusNotFound, "Not found")
	})

	return router
}

// registerImportRoutes загрузка и история импортов закрыты паролем,
// загрузка дополнительно ограничена по частоте
func registerImportRoutes(api *gin.RouterGroup, h *importhandler.Handler, opts Options) {
	auth := middleware.BearerAuth(opts.AdminPassword)
	limiter := middleware.NewRateLimiter(opts.UploadRateLimit)

	api.POST("/upload", limiter.Middleware(), auth, h.HandleUpload)

	imports := api.Group("/imports", auth)
	{
		imports.GET("", h.HandleListImports)
		imports.GET("/:id", h.HandleGetImport)
	}
}

func registerCatalogRoutes(api *gin.RouterGroup, h *cataloghandler.Handler) {
	catalogAPI := api.Group("/catalog")
	{
		catalogAPI.GET("/brands", h.HandleBrands)
		catalogAPI.GET("/brands/:brand/part-groups", h.HandlePartGroups)
		catalogAPI.GET("/brands/:brand/part-groups/:group/items", h.HandlePartGroupItems)
		catalogAPI.GET("/brands/:brand/part-names", h.HandlePartNames)
		catalogAPI.GET("/brands/:brand/part-names/:name/items", h.HandlePartNameItems)
		catalogAPI.GET("/brands/:brand/models", h.HandleModels)
		catalogAPI.GET("/brands/:brand/models/:model/parts", h.HandleModelParts)
		catalogAPI.GET("/brands/:brand/model-groups", h.HandleModelGroups)
		catalogAPI.GET("/repair-chips", h.HandleRepairChips)
		catalogAPI.GET("/search", h.HandleSearch)
		catalogAPI.GET("/export.xlsx", h.HandleExport)
	}
}

// healthHandler простой эндпоинт; при заданном ping проверяет хранилище
func healthHandler(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unavailable",
					"time":   time.Now().Format(time.RFC3339),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// registerSwaggerRoutes регистрирует Swagger UI
func registerSwaggerRoutes(router *gin.Engine, host string) {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}
