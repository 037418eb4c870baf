package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookupCell проверяет чтение ячейки с запасным поиском заголовка
func TestLookupCell(t *testing.T) {
	row := RawRow{
		"\uFEFFカテゴリ ": "iPhone > 12 > パネル",
		"価格":          " nan ",
		"トークン":        "  tok-1 ",
	}

	assert.Equal(t, "iPhone > 12 > パネル", LookupCell(row, ColumnCategory))
	assert.Equal(t, "", LookupCell(row, ColumnPrice), "nan читается как пустое значение")
	assert.Equal(t, "tok-1", LookupCell(row, ColumnToken))
	assert.Equal(t, "", LookupCell(row, ColumnVariation))
}

// TestNormalizeRow проверяет нормализацию одной строки
func TestNormalizeRow(t *testing.T) {
	t.Run("вариация добавляется к названию детали", func(t *testing.T) {
		items := NormalizeRow(RawRow{
			ColumnCategory:  "iPhone > 12 > パネル",
			ColumnVariation: "黒",
			ColumnPrice:     "¥12,800",
			ColumnToken:     "T1",
		})
		require.Len(t, items, 1)

		item := items[0]
		assert.Equal(t, "iPhone", item.Brand)
		assert.Equal(t, "12", item.Model)
		require.NotNil(t, item.PartGroup)
		assert.Equal(t, "パネル", *item.PartGroup)
		assert.Equal(t, "パネル 黒", item.PartName)
		assert.Equal(t, int64(12800), item.PriceYen)
		require.NotNil(t, item.SourceToken)
		assert.Equal(t, "T1", *item.SourceToken)
		require.NotNil(t, item.SourceCategory)
		assert.Equal(t, "iPhone > 12 > パネル", *item.SourceCategory)
	})

	t.Run("цена из 販売価格", func(t *testing.T) {
		items := NormalizeRow(RawRow{
			ColumnCategory:   "iPad > Air 2 > バッテリー",
			ColumnSalesPrice: "9,800",
		})
		require.Len(t, items, 1)
		assert.Equal(t, int64(9800), items[0].PriceYen)
		assert.Equal(t, "バッテリー", items[0].PartName)
		assert.Nil(t, items[0].SourceToken)
	})

	t.Run("пустая строка не отбрасывается", func(t *testing.T) {
		items := NormalizeRow(RawRow{})
		require.Len(t, items, 1)
		assert.Equal(t, OtherLabel, items[0].Brand)
		assert.Equal(t, OtherLabel, items[0].Model)
		assert.Equal(t, OtherLabel, items[0].PartName)
		assert.Equal(t, int64(0), items[0].PriceYen)
		assert.Nil(t, items[0].SourceCategory)
	})

	t.Run("несколько путей делят цену и токен", func(t *testing.T) {
		items := NormalizeRow(RawRow{
			ColumnCategory: "A > 1 > X, B > 2 > Y",
			ColumnPrice:    "500",
			ColumnToken:    "shared",
		})
		require.Len(t, items, 2)
		for _, it := range items {
			assert.Equal(t, int64(500), it.PriceYen)
			assert.Equal(t, "shared", *it.SourceToken)
		}
		assert.Equal(t, "A", items[0].Brand)
		assert.Equal(t, "B", items[1].Brand)
	})

	t.Run("символы замены не отбрасывают строку", func(t *testing.T) {
		items := NormalizeRow(RawRow{
			ColumnCategory:  "iPhone > 12 > パネル",
			ColumnVariation: "\uFFFD\uFFFD",
			ColumnPrice:     "8000",
		})
		require.Len(t, items, 1)
		assert.Equal(t, "パネル \uFFFD\uFFFD", items[0].PartName)
		assert.Equal(t, int64(8000), items[0].PriceYen)
	})
}

// TestNormalizeRows_LineIndexedErrors упавшая строка пропускается с номером
// строки файла, остальные обрабатываются
func TestNormalizeRows_LineIndexedErrors(t *testing.T) {
	orig := normalizeRow
	t.Cleanup(func() { normalizeRow = orig })
	normalizeRow = func(row RawRow) []NormalizedItem {
		if row[ColumnToken] == "boom" {
			panic("unexpected cell layout")
		}
		return orig(row)
	}

	result := NormalizeRows([]RawRow{
		{ColumnCategory: "iPhone > 8 > バッテリー", ColumnPrice: "5000"},
		{ColumnCategory: "iPhone > 8 > パネル", ColumnToken: "boom"},
		{ColumnCategory: "iPhone > X > パネル", ColumnPrice: "価格指定"},
	})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "行3: unexpected cell layout", result.Errors[0])
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.Candidates)
	assert.Equal(t, int64(0), result.Items[1].PriceYen)
}

// TestNormalizeRows_InvalidBytesImported некорректные байты не являются
// причиной пропуска строки
func TestNormalizeRows_InvalidBytesImported(t *testing.T) {
	result := NormalizeRows([]RawRow{
		{ColumnCategory: "iPhone > 12 > パネル", ColumnVariation: "\x8d\x95", ColumnPrice: "8000"},
		{ColumnCategory: "\xff > 8", ColumnPrice: "100"},
	})

	assert.Empty(t, result.Errors)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "iPhone", result.Items[0].Brand)
	assert.Equal(t, "\xff", result.Items[1].Brand)
}

// TestNormalizeRows_EndToEnd сценарий из двух строк: iPhone/12/パネル за 8000 ровно один раз
func TestNormalizeRows_EndToEnd(t *testing.T) {
	rows := []RawRow{
		{ColumnCategory: "iPhone > 12, iPhone > 12 Pro", ColumnPrice: "¥8,000"},
		{ColumnCategory: "iPhone>12>パネル", ColumnPrice: "8000", ColumnVariation: ""},
		{ColumnCategory: "iPhone > 12 > パネル", ColumnPrice: "8,000"},
	}

	result := NormalizeRows(rows)
	require.Empty(t, result.Errors)

	// Первая ячейка не содержит двух уровней ни в одном куске, поэтому
	// склеивается в один путь
	assert.Equal(t, 3, result.Candidates)
	assert.Len(t, result.Items, 2)

	count := 0
	for _, it := range result.Items {
		if it.Brand == "iPhone" && it.Model == "12" && it.PartGroupLabel() == "パネル" && it.PriceYen == 8000 {
			count++
		}
	}
	assert.Equal(t, 1, count)

	first := result.Items[0]
	assert.Equal(t, "iPhone", first.Brand)
	assert.Equal(t, "12, iPhone", first.Model)
	assert.Equal(t, "12 Pro", first.PartName)
}
