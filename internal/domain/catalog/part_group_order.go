package catalog

import (
	"regexp"
	"sort"
	"strings"
)

// partGroupOrder приоритет отображения パーツグループ
var partGroupOrder = []string{
	"パネル",
	"バッテリー",
	"充電コネクタ",
	"Rカメラ",
	"Fカメラ",
	"PBケーブル",
	"VLケーブル",
	"PVケーブル",
	"近接センサー",
	"イヤスピーカー",
	"ラウドスピーカー",
	"ホームボタン",
	"バックパネル",
}

// partGroupAlias вариант написания, указывающий на индекс в partGroupOrder
type partGroupAlias struct {
	pattern *regexp.Regexp
	index   int
}

func (a partGroupAlias) matches(label string) bool {
	return a.pattern.MatchString(label)
}

var partGroupAliases = []partGroupAlias{
	{pattern: regexp.MustCompile(`(?i)^paneru`), index: 0},
}

// partGroupByLength канонические метки от длинной к короткой,
// чтобы "バックパネル" не поглощалась префиксом "パネル"
var partGroupByLength = func() []int {
	idx := make([]int, len(partGroupOrder))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return len([]rune(partGroupOrder[idx[a]])) > len([]rune(partGroupOrder[idx[b]]))
	})
	return idx
}()

// PartGroupSortKey индекс part_group в приоритетном списке.
// nil (未分類) и нераспознанные метки получают длину списка.
func PartGroupSortKey(label *string) int {
	s := ""
	if label != nil {
		s = *label
	}
	return PartGroupLabelSortKey(s)
}

// PartGroupLabelSortKey то же для строковой метки
func PartGroupLabelSortKey(s string) int {
	for i, g := range partGroupOrder {
		if s == g {
			return i
		}
	}

	for _, alias := range partGroupAliases {
		if alias.matches(s) {
			return alias.index
		}
	}

	for _, i := range partGroupByLength {
		if strings.HasPrefix(s, partGroupOrder[i]) {
			return i
		}
	}
	return len(partGroupOrder)
}

// PartGroupOrder копия приоритетного списка
func PartGroupOrder() []string {
	return append([]string(nil), partGroupOrder...)
}

// ComparePartGroups сравнивает метки по приоритету, затем лексически
func ComparePartGroups(a, b string) int {
	oa, ob := PartGroupLabelSortKey(a), PartGroupLabelSortKey(b)
	if oa != ob {
		if oa < ob {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
