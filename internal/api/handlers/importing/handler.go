package importing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricecatalog/importer"
	"pricecatalog/internal/api/handlers/common"
	importapp "pricecatalog/internal/application/importing"
	importdomain "pricecatalog/internal/domain/importing"
	"pricecatalog/internal/domain/repositories"
	apperrors "pricecatalog/server/errors"
)

// Handler HTTP обработчик загрузки прайс-листов и журнала импортов
type Handler struct {
	baseHandler    common.BaseHandlerInterface
	useCase        *importapp.UseCase
	maxUploadBytes int64
}

// NewHandler создает новый HTTP обработчик импорта
func NewHandler(
	baseHandler common.BaseHandlerInterface,
	useCase *importapp.UseCase,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		baseHandler:    baseHandler,
		useCase:        useCase,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadResponse ответ успешного импорта
type UploadResponse struct {
	Success         bool     `json:"success"`
	ImportID        string   `json:"import_id"`
	TotalRows       int      `json:"total_rows"`
	NormalizedCount int      `json:"normalized_count"`
	InsertedCount   int      `json:"inserted_count"`
	ParseErrors     []string `json:"parse_errors,omitempty"`
	DetectedColumns []string `json:"detected_columns"`
}

// PartialUploadResponse ответ импорта, в котором часть пакетов не записалась
type PartialUploadResponse struct {
	Error        string                    `json:"error"`
	ImportID     string                    `json:"import_id"`
	ParseErrors  []string                  `json:"parse_errors"`
	InsertErrors []importdomain.BatchError `json:"insert_errors"`
}

// FinalizeFailedResponse позиции записаны, но итог импорта сохранить не удалось.
// Запись импорта остается в статусе processing, ImportID нужен для разбора.
type FinalizeFailedResponse struct {
	Error         string                    `json:"error"`
	ImportID      string                    `json:"import_id"`
	Status        string                    `json:"status"`
	InsertedCount int                       `json:"inserted_count"`
	ParseErrors   []string                  `json:"parse_errors"`
	InsertErrors  []importdomain.BatchError `json:"insert_errors"`
	FinalizeError string                    `json:"finalize_error"`
}

// ImportListResponse журнал импортов
type ImportListResponse struct {
	Imports []repositories.ImportRecord `json:"imports"`
	Total   int64                       `json:"total"`
	Limit   int                         `json:"limit"`
	Offset  int                         `json:"offset"`
}

// HandleUpload загружает выгрузку магазина в каталог
// @Summary Загрузить прайс-лист
// @Description Принимает CSV (UTF-8 или Shift_JIS) или XLSX выгрузку, нормализует строки и записывает их пакетами.
// @Description Если позиции записаны, но итог импорта не сохранился, ответ 500 содержит import_id, insert_errors и finalize_error.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Файл выгрузки"
// @Param note formData string false "Комментарий к импорту"
// @Param encoding formData string false "Кодировка CSV: utf-8, shift_jis, sjis"
// @Success 200 {object} UploadResponse
// @Success 207 {object} PartialUploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 413 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/upload [post]
func (h *Handler) HandleUpload(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.baseHandler.HandleHTTPError(c, apperrors.NewPayloadTooLargeError("File is too large", err))
			return
		}
		h.baseHandler.HandleHTTPError(c, apperrors.NewValidationError("File is required", err).WithDetail(err.Error()))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.baseHandler.HandleHTTPError(c, apperrors.NewValidationError("Failed to read uploaded file", err).WithDetail(err.Error()))
		return
	}
	defer file.Close()

	result, err := h.useCase.ImportFile(c.Request.Context(), importapp.ImportFileRequest{
		Filename: header.Filename,
		Note:     c.PostForm("note"),
		Encoding: c.PostForm("encoding"),
		Content:  file,
	})
	if err != nil {
		if result != nil && errors.Is(err, importdomain.ErrFinalizeFailed) {
			h.baseHandler.SendJSONResponse(c, http.StatusInternalServerError, FinalizeFailedResponse{
				Error:         "Failed to finalize import record",
				ImportID:      result.ImportID,
				Status:        result.Status,
				InsertedCount: result.InsertedCount,
				ParseErrors:   nonNilStrings(result.ParseErrors),
				InsertErrors:  nonNilBatchErrors(result.InsertErrors),
				FinalizeError: err.Error(),
			})
			return
		}
		h.baseHandler.HandleHTTPError(c, uploadError(err).WithContext("upload "+header.Filename))
		return
	}

	if result.Partial() {
		h.baseHandler.SendJSONResponse(c, http.StatusMultiStatus, PartialUploadResponse{
			Error:        "Some batches failed to insert",
			ImportID:     result.ImportID,
			ParseErrors:  nonNilStrings(result.ParseErrors),
			InsertErrors: result.InsertErrors,
		})
		return
	}

	h.baseHandler.SendJSONResponse(c, http.StatusOK, UploadResponse{
		Success:         true,
		ImportID:        result.ImportID,
		TotalRows:       result.TotalRows,
		NormalizedCount: result.NormalizedCount,
		InsertedCount:   result.InsertedCount,
		ParseErrors:     result.ParseErrors,
		DetectedColumns: result.DetectedColumns,
	})
}

// uploadError сопоставляет ошибки импорта с HTTP ответами
func uploadError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, importer.ErrUnsupportedEncoding):
		return apperrors.NewValidationError("Unsupported encoding", err).WithDetail(err.Error())
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return apperrors.NewValidationError("Unsupported file format", err).WithDetail(err.Error())
	case errors.Is(err, importapp.ErrUnreadableFile):
		return apperrors.NewValidationError("Failed to parse file", err).WithDetail(err.Error())
	case errors.Is(err, importdomain.ErrEmptyFile):
		return apperrors.NewValidationError("File has no data rows", err)
	case errors.Is(err, importdomain.ErrImportRecordFailed):
		return &apperrors.AppError{Code: http.StatusInternalServerError, Message: "Failed to create import record", Err: err}
	case errors.Is(err, importdomain.ErrFinalizeFailed):
		return &apperrors.AppError{Code: http.StatusInternalServerError, Message: "Failed to finalize import record", Err: err}
	}
	return apperrors.NewInternalError("import failed", err)
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilBatchErrors(v []importdomain.BatchError) []importdomain.BatchError {
	if v == nil {
		return []importdomain.BatchError{}
	}
	return v
}

// HandleListImports возвращает журнал импортов
// @Summary Журнал импортов
// @Tags imports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Количество записей (1-200)" default(50)
// @Param offset query int false "Смещение" default(0)
// @Param status query []string false "Фильтр по статусу" collectionFormat(multi)
// @Success 200 {object} ImportListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/imports [get]
func (h *Handler) HandleListImports(c *gin.Context) {
	filter := repositories.ImportFilter{
		Status: c.QueryArray("status"),
		Limit:  common.QueryInt(c, "limit", 50, 1, 200),
		Offset: common.QueryInt(c, "offset", 0, 0, 1<<31-1),
	}

	records, total, err := h.useCase.ListImports(c.Request.Context(), filter)
	if err != nil {
		h.baseHandler.HandleHTTPError(c, apperrors.NewInternalError("failed to list imports", err))
		return
	}
	if records == nil {
		records = []repositories.ImportRecord{}
	}

	h.baseHandler.SendJSONResponse(c, http.StatusOK, ImportListResponse{
		Imports: records,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	})
}

// HandleGetImport возвращает запись импорта
// @Summary Запись импорта
// @Tags imports
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID импорта"
// @Success 200 {object} repositories.ImportRecord
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/imports/{id} [get]
func (h *Handler) HandleGetImport(c *gin.Context) {
	id := c.Param("id")
	record, err := h.useCase.GetImport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, importdomain.ErrImportNotFound) {
			h.baseHandler.HandleHTTPError(c, apperrors.NewNotFoundError("Import not found", err))
			return
		}
		h.baseHandler.HandleHTTPError(c, apperrors.NewInternalError("failed to get import", err))
		return
	}
	h.baseHandler.SendJSONResponse(c, http.StatusOK, record)
}
