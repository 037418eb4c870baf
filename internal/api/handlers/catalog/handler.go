package catalog

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricecatalog/internal/api/handlers/common"
	catalogapp "pricecatalog/internal/application/catalog"
	"pricecatalog/internal/domain/catalog"
	apperrors "pricecatalog/server/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler HTTP обработчик запросов к каталогу
type Handler struct {
	baseHandler common.BaseHandlerInterface
	useCase     *catalogapp.UseCase
}

// NewHandler создает новый HTTP обработчик каталога
func NewHandler(baseHandler common.BaseHandlerInterface, useCase *catalogapp.UseCase) *Handler {
	return &Handler{
		baseHandler: baseHandler,
		useCase:     useCase,
	}
}

// ItemResponse позиция каталога с отображаемой ценой
type ItemResponse struct {
	ID             string  `json:"id"`
	ImportID       string  `json:"import_id"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	PartGroup      *string `json:"part_group"`
	PartName       string  `json:"part_name"`
	PriceYen       int64   `json:"price_yen"`
	PriceDisplay   string  `json:"price_display"`
	SourceToken    *string `json:"source_token"`
	SourceCategory *string `json:"source_category"`
}

// ModelItemsResponse позиции одной модели
type ModelItemsResponse struct {
	Model string         `json:"model"`
	Items []ItemResponse `json:"items"`
}

// PartGroupItemsResponse позиции одной группы деталей
type PartGroupItemsResponse struct {
	Group *string        `json:"group"`
	Label string         `json:"label"`
	Items []ItemResponse `json:"items"`
}

// SearchResponse результат поиска
type SearchResponse struct {
	Items     []ItemResponse `json:"items"`
	Total     int            `json:"total"`
	Truncated bool           `json:"truncated"`
}

// ListResponse список строк
type ListResponse struct {
	Items []string `json:"items"`
}

func toItemResponse(r catalog.CatalogRecord) ItemResponse {
	return ItemResponse{
		ID:             r.ID,
		ImportID:       r.ImportID,
		Brand:          r.Brand,
		Model:          r.Model,
		PartGroup:      r.PartGroup,
		PartName:       r.PartName,
		PriceYen:       r.PriceYen,
		PriceDisplay:   catalog.FormatPrice(r.PriceYen),
		SourceToken:    r.SourceToken,
		SourceCategory: r.SourceCategory,
	}
}

func toItemResponses(records []catalog.CatalogRecord) []ItemResponse {
	out := make([]ItemResponse, len(records))
	for i, r := range records {
		out[i] = toItemResponse(r)
	}
	return out
}

func toModelItemsResponses(groups []catalog.ModelItems) []ModelItemsResponse {
	out := make([]ModelItemsResponse, len(groups))
	for i, g := range groups {
		out[i] = ModelItemsResponse{Model: g.Model, Items: toItemResponses(g.Items)}
	}
	return out
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func (h *Handler) sendList(c *gin.Context, items []string, err error) {
	if err != nil {
		h.baseHandler.HandleHTTPError(c, apperrors.WrapError(err, "failed to load catalog"))
		return
	}
	h.baseHandler.SendJSONResponse(c, http.StatusOK, ListResponse{Items: nonNil(items)})
}

// HandleBrands бренды каталога
// @Summary Бренды
// @Description Бренды в порядке отображения: приоритетные, остальные по алфавиту, игровые консоли последними
// @Tags catalog
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/brands [get]
func (h *Handler) HandleBrands(c *gin.Context) {
	brands, err := h.useCase.Brands(c.Request.Context())
	h.sendList(c, brands, err)
}

// HandlePartGroups группы деталей бренда
// @Summary Группы деталей бренда
// @Tags catalog
// @Produce json
// @Param brand path string true "Бренд"
// @Success 200 {object} ListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/brands/{brand}/part-groups [get]
func (h *Handler) HandlePartGroups(c *gin.Context) {
	groups, err := h.useCase.PartGroups(c.Request.Context(), c.Param("brand"))
	h.sendList(c, groups, err)
}

// HandlePartNames названия деталей бренда
// @Summary Названия деталей бренда
// @Tags catalog
// @Produce json
// @Param brand path string true "Бренд"
// @Success 200 {object} ListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/brands/{brand}/part-names [get]
func (h *Handler) HandlePartNames(c *gin.Context) {
	names, err := h.useCase.PartNames(c.Request.Context(), c.Param("brand"))
	h.sendList(c, names, err)
}

// HandleModels модели бренда в порядке выхода
// @Summary Модели бренда
// @Tags catalog
// @Produce json
// @Param brand path string true "Бренд"
// @Success 200 {object} ListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/brands/{brand}/models [get]
func (h *Handler) HandleModels(c *gin.Context) {
	models, err := h.useCase.Models(c.Request.Context(), c.Param("brand"))
	h.sendList(c, models, err)
}

// HandleModelGroups плитки моделей бренда
// @Summary Группы моделей бренда
// @Tags catalog
// @Produce json
// @Param brand path string true "Бренд"
// @Success 200 {array} catalog.ModelGroup
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/brands/{brand}/model-groups [get]
func (h *Handler) HandleModelGroups(c *gin.Context) {
	groups, err := h.useCase.ModelGroups(c.Request.Context(), c.Param("brand"))
	if err != nil {
		h.baseHandler.HandleHTTPError(c, apperrors.WrapError(err, "failed to load model groups"))
		return
	}
	if groups == nil {
		groups = []catalog.ModelGroup{}
	}
	h.baseHandler.SendJSONResponse(c, http.StatusOK, groups)
}

// HandlePartGroupItems позиции группы деталей по моделям
// @Summary Позиции группы деталей
// @Description Позиции бренда с указанной группой, сгруппированные по модели в порядке выхода. Группа "未分類" включает позиции без группы.
// @Tags catalog
// @Produce json
// @Param brand path string true "Бренд"
// @Param group path string true "Группа деталей"
// @Success 200 {array} ModelItemsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/brands/{brand}/part-groups/{group}/items [get]
func (h *Handler) HandlePartGroupItems(c *gin.Context) {
	groups, err := h.useCase.PartGroupItems(c.Request.Context(), c.Param("brand"), c.Param("group"))
	if err != nil {
		h.baseHandler.HandleHTTPError(c, apperrors.WrapError(err, "failed to load items"))
		return
	}

	h.baseHandler.SendJSONResponse(c, http.StatusOK, toModelItemsResponses(groups))
}

// HandlePartNameItems позиции с названием детали по моделям
// @Summary Позиции по названию детали
// @Description Позиции бренда с указанным названием детали, сгруппированные по модели в порядке выхода
// @Tags catalog
// @Produce json
// @Param brand path string true "Бренд"
// @Param name path string true "Название детали"
// @Success 200 {array} ModelItemsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/brands/{brand}/part-names/{name}/items [get]
func (h *Handler) HandlePartNameItems(c *gin.Context) {
	groups, err := h.useCase.PartNameItems(c.Request.Context(), c.Param("brand"), c.Param("name"))
	if err != nil {
		h.baseHandler.HandleHTTPError(c, apperrors.WrapError(err, "failed to load items"))
		return
	}
	h.baseHandler.SendJSONResponse(c, http.StatusOK, toModelItemsResponses(groups))
}

// HandleModelParts детали модели и ее группы
// @Summary Детали модели
// @Description Детали всех моделей из группы указанной модели, по группам деталей в порядке приоритета
// @Tags catalog
// @Produce json
// @Param brand path string true "Бренд"
// @Param model path string true "Модель"
// @Success 200 {array} PartGroupItemsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/brands/{brand}/models/{model}/parts [get]
func (h *Handler) HandleModelParts(c *gin.Context) {
	groups, err := h.useCase.ModelParts(c.Request.Context(), c.Param("brand"), c.Param("model"))
	if err != nil {
		h.baseHandler.HandleHTTPError(c, apperrors.WrapError(err, "failed to load parts"))
		return
	}

	out := make([]PartGroupItemsResponse, len(groups))
	for i, g := range groups {
		out[i] = PartGroupItemsResponse{Group: g.Group, Label: g.Label, Items: toItemResponses(g.Items)}
	}
	h.baseHandler.SendJSONResponse(c, http.StatusOK, out)
}

// HandleRepairChips доступные фильтры поиска
// @Summary Фильтры по виду ремонта
// @Tags catalog
// @Produce json
// @Success 200 {object} ListResponse
// @Router /api/catalog/repair-chips [get]
func (h *Handler) HandleRepairChips(c *gin.Context) {
	chips := catalog.RepairChips()
	labels := make([]string, len(chips))
	for i, chip := range chips {
		labels[i] = chip.Label
	}
	h.baseHandler.SendJSONResponse(c, http.StatusOK, ListResponse{Items: labels})
}

// HandleSearch поиск по модели и видам ремонта
// @Summary Поиск
// @Tags catalog
// @Produce json
// @Param q query string false "Подстрока модели"
// @Param repair query []string false "Фильтры: パネル, バッテリー, 背面, カメラ, 水没" collectionFormat(multi)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/search [get]
func (h *Handler) HandleSearch(c *gin.Context) {
	result, err := h.useCase.Search(c.Request.Context(), catalog.SearchQuery{
		Model:   c.Query("q"),
		Repairs: c.QueryArray("repair"),
	})
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownRepairChip) {
			h.baseHandler.HandleHTTPError(c, apperrors.NewValidationError("Unknown repair filter", err).WithDetail(err.Error()))
			return
		}
		h.baseHandler.HandleHTTPError(c, apperrors.WrapError(err, "failed to search catalog"))
		return
	}

	h.baseHandler.SendJSONResponse(c, http.StatusOK, SearchResponse{
		Items:     toItemResponses(result.Items),
		Total:     result.Total,
		Truncated: result.Truncated,
	})
}

// HandleExport прайс-лист в формате XLSX
// @Summary Экспорт прайс-листа
// @Tags catalog
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/catalog/export.xlsx [get]
func (h *Handler) HandleExport(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.useCase.ExportPriceList(c.Request.Context(), &buf); err != nil {
		h.baseHandler.HandleHTTPError(c, apperrors.WrapError(err, "failed to export price list"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="price_list.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
