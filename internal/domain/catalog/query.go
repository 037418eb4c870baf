package catalog

import (
	"sort"
	"strings"
)

// ModelGroup плитка моделей: "12", "12 Pro" и "12/12Pro" показываются вместе
type ModelGroup struct {
	GroupKey       string   `json:"group_key"`
	DisplayName    string   `json:"display_name"`
	Models         []string `json:"models"`
	CanonicalModel string   `json:"canonical_model"`
}

// ModelItems позиции одной модели
type ModelItems struct {
	Model string          `json:"model"`
	Items []CatalogRecord `json:"items"`
}

// PartGroupItems позиции одной パーツグループ. Group = nil для 未分類.
type PartGroupItems struct {
	Group *string         `json:"group"`
	Label string          `json:"label"`
	Items []CatalogRecord `json:"items"`
}

// modelGroupSeparator разделитель в отображаемом имени группы
const modelGroupSeparator = "・"

// Catalog неизменяемый снимок активных записей. Все методы чистые
// и безопасны для одновременного чтения.
type Catalog struct {
	records []CatalogRecord
}

// NewCatalog создает снимок. Срез копируется.
func NewCatalog(records []CatalogRecord) *Catalog {
	return &Catalog{records: append([]CatalogRecord(nil), records...)}
}

// Len количество записей в снимке
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records копия всех записей в порядке загрузки
func (c *Catalog) Records() []CatalogRecord {
	return append([]CatalogRecord(nil), c.records...)
}

func (c *Catalog) byBrand(brand string) []CatalogRecord {
	var out []CatalogRecord
	for _, r := range c.records {
		if r.Brand == brand {
			out = append(out, r)
		}
	}
	return out
}

// Brands различные бренды в порядке отображения
func (c *Catalog) Brands() []string {
	return SortBrands(distinct(c.records, func(r CatalogRecord) string { return r.Brand }))
}

// PartGroupsByBrand различные パーツグループ бренда; NULL возвращается как "未分類"
func (c *Catalog) PartGroupsByBrand(brand string) []string {
	labels := distinct(c.byBrand(brand), CatalogRecord.PartGroupLabel)
	sortLabelsByPartGroup(labels)
	return labels
}

// PartNamesByBrand различные パーツ名 бренда в порядке приоритета групп
func (c *Catalog) PartNamesByBrand(brand string) []string {
	names := distinct(c.byBrand(brand), func(r CatalogRecord) string { return r.PartName })
	sortLabelsByPartGroup(names)
	return names
}

// ModelsByBrand модели бренда в порядке выхода
func (c *Catalog) ModelsByBrand(brand string) []string {
	models := distinct(c.byBrand(brand), func(r CatalogRecord) string { return r.Model })
	return SortModels(models, brand)
}

// ModelGroupsByBrand модели бренда, сгруппированные по поколению и квалификатору.
// Каноническая модель группы первая в порядке выхода.
func (c *Catalog) ModelGroupsByBrand(brand string) []ModelGroup {
	var groups []ModelGroup
	index := make(map[string]int)

	for _, model := range c.ModelsByBrand(brand) {
		key := ModelGroupKey(model)
		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, ModelGroup{GroupKey: key})
			i = len(groups) - 1
		}
		groups[i].Models = append(groups[i].Models, model)
	}

	for i := range groups {
		groups[i].CanonicalModel = groups[i].Models[0]
		groups[i].DisplayName = strings.Join(groups[i].Models, modelGroupSeparator)
	}
	return groups
}

// ModelsInSameGroup модели бренда с тем же ключом группы, что и model
func (c *Catalog) ModelsInSameGroup(brand, model string) []string {
	key := ModelGroupKey(model)
	var out []string
	for _, m := range c.ModelsByBrand(brand) {
		if ModelGroupKey(m) == key {
			out = append(out, m)
		}
	}
	return out
}

// ItemsByBrandAndPartGroup позиции бренда с указанной группой.
// "未分類" совпадает и с NULL, и с буквальным "未分類".
func (c *Catalog) ItemsByBrandAndPartGroup(brand, partGroup string) []CatalogRecord {
	var out []CatalogRecord
	for _, r := range c.byBrand(brand) {
		if r.PartGroupLabel() == partGroup {
			out = append(out, r)
		}
	}
	sortByRelease(out, brand)
	return out
}

// ItemsByBrandAndPartName позиции бренда с указанным названием детали
func (c *Catalog) ItemsByBrandAndPartName(brand, partName string) []CatalogRecord {
	var out []CatalogRecord
	for _, r := range c.byBrand(brand) {
		if r.PartName == partName {
			out = append(out, r)
		}
	}
	sortByRelease(out, brand)
	return out
}

// PartsByBrandAndModels позиции нескольких моделей бренда,
// по приоритету группы, затем по названию детали
func (c *Catalog) PartsByBrandAndModels(brand string, models []string) []CatalogRecord {
	want := make(map[string]struct{}, len(models))
	for _, m := range models {
		want[m] = struct{}{}
	}

	var out []CatalogRecord
	for _, r := range c.byBrand(brand) {
		if _, ok := want[r.Model]; ok {
			out = append(out, r)
		}
	}
	sortByPartGroup(out)
	return out
}

// PriceList все записи в порядке прайс-листа:
// бренд, модель по выходу, группа по приоритету, название детали
func (c *Catalog) PriceList() []CatalogRecord {
	out := c.Records()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if cmp := CompareBrands(a.Brand, b.Brand); cmp != 0 {
			return cmp < 0
		}
		if a.Model != b.Model {
			return CompareModels(a.Model, b.Model, a.Brand) < 0
		}
		if cmp := ComparePartGroups(a.PartGroupLabel(), b.PartGroupLabel()); cmp != 0 {
			return cmp < 0
		}
		return a.PartName < b.PartName
	})
	return out
}

// GroupItemsByModel группирует позиции по модели в порядке выхода.
// Пустой brand означает запасную эвристику по номеру поколения.
func GroupItemsByModel(items []CatalogRecord, brand string) []ModelItems {
	byModel := make(map[string][]CatalogRecord)
	var models []string
	for _, it := range items {
		if _, ok := byModel[it.Model]; !ok {
			models = append(models, it.Model)
		}
		byModel[it.Model] = append(byModel[it.Model], it)
	}

	out := make([]ModelItems, 0, len(models))
	for _, m := range SortModels(models, brand) {
		out = append(out, ModelItems{Model: m, Items: byModel[m]})
	}
	return out
}

// GroupPartsByPartGroup группирует позиции по パーツグループ в порядке приоритета.
// NULL и "未分類" попадают в одну группу.
func GroupPartsByPartGroup(items []CatalogRecord) []PartGroupItems {
	byLabel := make(map[string]*PartGroupItems)
	var labels []string
	for _, it := range items {
		label := it.PartGroupLabel()
		g, ok := byLabel[label]
		if !ok {
			g = &PartGroupItems{Label: label}
			if label != UnclassifiedLabel {
				g.Group = stringPtr(label)
			}
			byLabel[label] = g
			labels = append(labels, label)
		}
		g.Items = append(g.Items, it)
	}

	sortLabelsByPartGroup(labels)
	out := make([]PartGroupItems, 0, len(labels))
	for _, l := range labels {
		out = append(out, *byLabel[l])
	}
	return out
}

// distinct уникальные значения в порядке первого появления
func distinct(records []CatalogRecord, field func(CatalogRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func sortLabelsByPartGroup(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return ComparePartGroups(labels[i], labels[j]) < 0
	})
}

// sortByRelease модель по выходу, затем название детали
func sortByRelease(items []CatalogRecord, brand string) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if ka, kb := ReleaseSortKey(a.Model, brand), ReleaseSortKey(b.Model, brand); ka != kb {
			return ka < kb
		}
		if a.PartName != b.PartName {
			return a.PartName < b.PartName
		}
		return a.Model < b.Model
	})
}

// sortByPartGroup приоритет группы, затем название детали
func sortByPartGroup(items []CatalogRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if oa, ob := PartGroupSortKey(a.PartGroup), PartGroupSortKey(b.PartGroup); oa != ob {
			return oa < ob
		}
		return a.PartName < b.PartName
	})
}
