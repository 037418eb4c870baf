package catalog

import (
	"sort"
	"strings"
)

// brandPriorityOrder бренды, которые показываются первыми
var brandPriorityOrder = []string{"iPhone", "iPad", "Xperia", "Galaxy", "HUAWEI"}

// gameConsoleBrands игровые консоли, показываются последними
var gameConsoleBrands = []string{"PlayStation", "PS", "Switch", "XBOX"}

const (
	brandTierPriority = iota
	brandTierOther
	brandTierConsole
)

// BrandSortKey уровень и позиция бренда в порядке отображения
type BrandSortKey struct {
	Tier  int
	Index int
}

// BrandKey вычисляет ключ сортировки бренда (сравнение без учета регистра)
func BrandKey(brand string) BrandSortKey {
	for i, b := range brandPriorityOrder {
		if strings.EqualFold(b, brand) {
			return BrandSortKey{Tier: brandTierPriority, Index: i}
		}
	}
	for i, b := range gameConsoleBrands {
		if strings.EqualFold(b, brand) {
			return BrandSortKey{Tier: brandTierConsole, Index: i}
		}
	}
	return BrandSortKey{Tier: brandTierOther}
}

// CompareBrands приоритетные бренды, затем прочие, затем консоли;
// внутри уровня по позиции в списке и лексически
func CompareBrands(a, b string) int {
	ka, kb := BrandKey(a), BrandKey(b)
	if ka.Tier != kb.Tier {
		return compareInts(ka.Tier, kb.Tier)
	}
	if ka.Index != kb.Index {
		return compareInts(ka.Index, kb.Index)
	}
	return strings.Compare(a, b)
}

// SortBrands возвращает копию списка брендов в порядке отображения
func SortBrands(brands []string) []string {
	out := append([]string(nil), brands...)
	sort.SliceStable(out, func(i, j int) bool {
		return CompareBrands(out[i], out[j]) < 0
	})
	return out
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
