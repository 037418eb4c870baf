package catalog

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultBrowseLimit позиций без запроса и фильтров
	DefaultBrowseLimit = 80
	// MaxSearchResults максимум позиций в ответе поиска
	MaxSearchResults = 300
)

// RepairChip быстрый фильтр поиска по виду ремонта
type RepairChip struct {
	Label   string
	pattern *regexp.Regexp
}

// Matches проверяет part_group и part_name позиции
func (c RepairChip) Matches(r CatalogRecord) bool {
	if r.PartGroup != nil && c.pattern.MatchString(*r.PartGroup) {
		return true
	}
	return c.pattern.MatchString(r.PartName)
}

var repairChips = []RepairChip{
	{Label: "パネル", pattern: regexp.MustCompile(`パネル`)},
	{Label: "バッテリー", pattern: regexp.MustCompile(`バッテリー`)},
	{Label: "背面", pattern: regexp.MustCompile(`バック|背面`)},
	{Label: "カメラ", pattern: regexp.MustCompile(`カメラ`)},
	{Label: "水没", pattern: regexp.MustCompile(`水没`)},
}

// RepairChips доступные фильтры в порядке отображения
func RepairChips() []RepairChip {
	return append([]RepairChip(nil), repairChips...)
}

// RepairChipByLabel ищет фильтр по метке
func RepairChipByLabel(label string) (RepairChip, bool) {
	for _, c := range repairChips {
		if c.Label == label {
			return c, true
		}
	}
	return RepairChip{}, false
}

// SearchQuery параметры поиска
type SearchQuery struct {
	// Model подстрока названия модели, без учета регистра
	Model string
	// Repairs метки фильтров, достаточно совпадения с любым
	Repairs []string
}

// SearchResult найденные позиции и их общее количество до усечения
type SearchResult struct {
	Items     []CatalogRecord `json:"items"`
	Total     int             `json:"total"`
	Truncated bool            `json:"truncated"`
}

// Search фильтрует снимок по модели и видам ремонта.
// Без запроса и фильтров берутся первые DefaultBrowseLimit позиций.
// Неизвестные метки фильтров возвращают ErrUnknownRepairChip.
func (c *Catalog) Search(q SearchQuery) (SearchResult, error) {
	chips := make([]RepairChip, 0, len(q.Repairs))
	for _, label := range q.Repairs {
		chip, ok := RepairChipByLabel(label)
		if !ok {
			return SearchResult{}, &UnknownRepairChipError{Label: label}
		}
		chips = append(chips, chip)
	}

	needle := strings.ToLower(strings.TrimSpace(q.Model))
	list := c.records

	if needle != "" {
		var filtered []CatalogRecord
		for _, r := range list {
			if strings.Contains(strings.ToLower(r.Model), needle) {
				filtered = append(filtered, r)
			}
		}
		list = filtered
	}

	if len(chips) > 0 {
		var filtered []CatalogRecord
		for _, r := range list {
			for _, chip := range chips {
				if chip.Matches(r) {
					filtered = append(filtered, r)
					break
				}
			}
		}
		list = filtered
	}

	if needle == "" && len(chips) == 0 && len(list) > DefaultBrowseLimit {
		list = list[:DefaultBrowseLimit]
	}

	out := append([]CatalogRecord(nil), list...)
	sortSearchResults(out)

	result := SearchResult{Total: len(out)}
	if len(out) > MaxSearchResults {
		out = out[:MaxSearchResults]
		result.Truncated = true
	}
	result.Items = out
	return result, nil
}

// sortSearchResults приоритет группы, бренд, модель, название детали
func sortSearchResults(items []CatalogRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if oa, ob := PartGroupSortKey(a.PartGroup), PartGroupSortKey(b.PartGroup); oa != ob {
			return oa < ob
		}
		if a.Brand != b.Brand {
			return a.Brand < b.Brand
		}
		if a.Model != b.Model {
			return a.Model < b.Model
		}
		return a.PartName < b.PartName
	})
}
