package catalog

import "time"

// Метки по умолчанию для недостающих уровней категории
const (
	// OtherLabel подставляется вместо отсутствующей ブランド/機種/パーツ
	OtherLabel = "その他"
	// UnclassifiedLabel отображаемое имя для part_group = NULL
	UnclassifiedLabel = "未分類"
)

// Названия колонок экспорта Square
const (
	ColumnCategory   = "カテゴリ"
	ColumnVariation  = "バリエーション名"
	ColumnPrice      = "価格"
	ColumnSalesPrice = "販売価格"
	ColumnToken      = "トークン"
)

// RawRow одна строка CSV: заголовок колонки -> значение ячейки.
// Отсутствие ключа означает отсутствие ячейки.
type RawRow map[string]string

// NormalizedItem нормализованная позиция прайс-листа
type NormalizedItem struct {
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	PartGroup      *string `json:"part_group"`
	PartName       string  `json:"part_name"`
	PriceYen       int64   `json:"price_yen"`
	SourceToken    *string `json:"source_token"`
	SourceCategory *string `json:"source_category"`
}

// PartGroupLabel возвращает part_group или "未分類" для NULL
func (i NormalizedItem) PartGroupLabel() string {
	if i.PartGroup == nil {
		return UnclassifiedLabel
	}
	return *i.PartGroup
}

// CatalogRecord сохраненная запись каталога (строка catalog_latest)
type CatalogRecord struct {
	ID       string `json:"id"`
	ImportID string `json:"import_id"`
	NormalizedItem
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// PartGroupLabel для записи делегирует к нормализованной позиции
func (r CatalogRecord) PartGroupLabel() string {
	return r.NormalizedItem.PartGroupLabel()
}

// CategoryPath разобранный путь "ブランド > 機種 > パーツ"
type CategoryPath struct {
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	PartGroup string `json:"part_group"`
}

func stringPtr(s string) *string {
	return &s
}

// optionalString возвращает nil для пустой строки
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
