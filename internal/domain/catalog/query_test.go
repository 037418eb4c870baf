package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(brand, model string, group *string, partName string, price int64) CatalogRecord {
	return CatalogRecord{
		NormalizedItem: NormalizedItem{
			Brand:     brand,
			Model:     model,
			PartGroup: group,
			PartName:  partName,
			PriceYen:  price,
		},
		IsActive: true,
	}
}

func testCatalog() *Catalog {
	return NewCatalog([]CatalogRecord{
		record("iPhone", "12", stringPtr("バッテリー"), "バッテリー", 7000),
		record("iPhone", "12 Pro", stringPtr("パネル"), "パネル", 15000),
		record("iPhone", "6", stringPtr("パネル"), "パネル", 5000),
		record("iPhone", "SE", stringPtr("バックパネル"), "バックパネル", 6000),
		record("iPhone", "12", stringPtr("パネル"), "パネル 黒", 14000),
		record("iPhone", "12", nil, "ガラスコーティング", 0),
		record("iPhone", "12", stringPtr(UnclassifiedLabel), "フィルム", 1000),
		record("iPhone", "12 mini", stringPtr("パネル"), "パネル", 13000),
		record("Switch", "Lite", stringPtr("パネル"), "パネル", 9000),
		record("AQUOS", "sense4", stringPtr("バッテリー"), "バッテリー", 8000),
		record("iPad", "Air 2", stringPtr("バッテリー"), "バッテリー", 9000),
	})
}

// TestCatalog_Brands порядок брендов
func TestCatalog_Brands(t *testing.T) {
	assert.Equal(t, []string{"iPhone", "iPad", "AQUOS", "Switch"}, testCatalog().Brands())
}

// TestCatalog_PartGroupsByBrand NULL возвращается как 未分類 и сортируется последним
func TestCatalog_PartGroupsByBrand(t *testing.T) {
	got := testCatalog().PartGroupsByBrand("iPhone")
	assert.Equal(t, []string{"パネル", "バッテリー", "バックパネル", UnclassifiedLabel}, got)
}

// TestCatalog_PartNamesByBrand названия деталей в порядке приоритета групп
func TestCatalog_PartNamesByBrand(t *testing.T) {
	got := testCatalog().PartNamesByBrand("iPhone")
	assert.Equal(t, []string{"パネル", "パネル 黒", "バッテリー", "バックパネル", "ガラスコーティング", "フィルム"}, got)
}

// TestCatalog_ModelsByBrand модели в порядке выхода
func TestCatalog_ModelsByBrand(t *testing.T) {
	got := testCatalog().ModelsByBrand("iPhone")
	assert.Equal(t, []string{"6", "SE", "12", "12 Pro", "12 mini"}, got)
}

// TestCatalog_ModelGroupsByBrand плитки моделей
func TestCatalog_ModelGroupsByBrand(t *testing.T) {
	groups := testCatalog().ModelGroupsByBrand("iPhone")
	require.Len(t, groups, 4)

	assert.Equal(t, "6", groups[0].GroupKey)
	assert.Equal(t, "SE", groups[1].GroupKey)

	assert.Equal(t, "12", groups[2].GroupKey)
	assert.Equal(t, []string{"12", "12 Pro"}, groups[2].Models)
	assert.Equal(t, "12・12 Pro", groups[2].DisplayName)
	assert.Equal(t, "12", groups[2].CanonicalModel)

	assert.Equal(t, "12mini", groups[3].GroupKey)
	assert.Equal(t, "12 mini", groups[3].DisplayName)
}

// TestCatalog_ModelsInSameGroup модели одной плитки
func TestCatalog_ModelsInSameGroup(t *testing.T) {
	assert.Equal(t, []string{"12", "12 Pro"}, testCatalog().ModelsInSameGroup("iPhone", "12 Pro"))
	assert.Nil(t, testCatalog().ModelsInSameGroup("iPhone", "15"))
}

// TestCatalog_ItemsByBrandAndPartGroup_Unclassified NULL и "未分類" неразличимы
func TestCatalog_ItemsByBrandAndPartGroup_Unclassified(t *testing.T) {
	items := testCatalog().ItemsByBrandAndPartGroup("iPhone", UnclassifiedLabel)
	require.Len(t, items, 2)
	assert.Equal(t, "ガラスコーティング", items[0].PartName)
	assert.Equal(t, "フィルム", items[1].PartName)

	groups := GroupPartsByPartGroup(items)
	require.Len(t, groups, 1)
	assert.Nil(t, groups[0].Group)
	assert.Equal(t, UnclassifiedLabel, groups[0].Label)
}

// TestCatalog_ItemsByBrandAndPartGroup сортировка по выходу модели, затем по названию детали
func TestCatalog_ItemsByBrandAndPartGroup(t *testing.T) {
	items := testCatalog().ItemsByBrandAndPartGroup("iPhone", "パネル")
	var models []string
	for _, it := range items {
		models = append(models, it.Model+"/"+it.PartName)
	}
	assert.Equal(t, []string{"6/パネル", "12 Pro/パネル", "12 mini/パネル", "12/パネル 黒"}, models)

	grouped := GroupItemsByModel(items, "iPhone")
	require.Len(t, grouped, 4)
	assert.Equal(t, "6", grouped[0].Model)
	assert.Equal(t, "12 mini", grouped[3].Model)
}

// TestCatalog_ItemsByBrandAndPartName фильтр по названию детали
func TestCatalog_ItemsByBrandAndPartName(t *testing.T) {
	items := testCatalog().ItemsByBrandAndPartName("iPhone", "パネル")
	require.Len(t, items, 3)
	assert.Equal(t, "6", items[0].Model)
}

// TestCatalog_PartsByBrandAndModels детали плитки по приоритету групп
func TestCatalog_PartsByBrandAndModels(t *testing.T) {
	c := testCatalog()
	parts := c.PartsByBrandAndModels("iPhone", c.ModelsInSameGroup("iPhone", "12"))
	var names []string
	for _, p := range parts {
		names = append(names, p.PartName)
	}
	assert.Equal(t, []string{"パネル", "パネル 黒", "バッテリー", "ガラスコーティング", "フィルム"}, names)

	groups := GroupPartsByPartGroup(parts)
	require.Len(t, groups, 3)
	assert.Equal(t, "パネル", groups[0].Label)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "バッテリー", groups[1].Label)
	assert.Equal(t, UnclassifiedLabel, groups[2].Label)
	assert.Len(t, groups[2].Items, 2)

	assert.Len(t, c.PartsByBrandAndModels("iPhone", []string{"SE"}), 1)
}

// TestCatalog_PriceList порядок прайс-листа
func TestCatalog_PriceList(t *testing.T) {
	list := testCatalog().PriceList()
	require.Len(t, list, 11)
	assert.Equal(t, "6", list[0].Model)
	assert.Equal(t, "iPad", list[8].Brand)
	assert.Equal(t, "AQUOS", list[9].Brand)
	assert.Equal(t, "Switch", list[10].Brand)
}

// TestGroupItemsByModel_GenericFallback без бренда работает эвристика поколения
func TestGroupItemsByModel_GenericFallback(t *testing.T) {
	items := []CatalogRecord{
		record("X", "Phone 10", nil, "a", 1),
		record("X", "Phone 2", nil, "b", 1),
		record("X", "Phone 10", nil, "c", 1),
	}
	grouped := GroupItemsByModel(items, "")
	require.Len(t, grouped, 2)
	assert.Equal(t, "Phone 2", grouped[0].Model)
	assert.Len(t, grouped[1].Items, 2)
}
