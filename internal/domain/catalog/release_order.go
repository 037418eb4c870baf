package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// UnknownReleaseKey ключ для полностью нераспознанных моделей (сортируются последними)
const UnknownReleaseKey = 9_000_000

// generationWeight множитель номера поколения в запасной эвристике
const generationWeight = 1000

// ReleaseTable неизменяемая таблица "нормализованная модель -> период выхода"
type ReleaseTable struct {
	name    string
	values  map[string]int
	entries []releaseEntry // порядок проверки префиксного совпадения
}

type releaseEntry struct {
	key   string
	value int
}

func newReleaseTable(name string, values map[string]int) *ReleaseTable {
	copied := make(map[string]int, len(values))
	entries := make([]releaseEntry, 0, len(values))
	for k, v := range values {
		copied[k] = v
		entries = append(entries, releaseEntry{key: k, value: v})
	}

	// Длинный ключ выигрывает, затем более ранний выход, затем ключ
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if len(a.key) != len(b.key) {
			return len(a.key) > len(b.key)
		}
		if a.value != b.value {
			return a.value < b.value
		}
		return a.key < b.key
	})

	return &ReleaseTable{name: name, values: copied, entries: entries}
}

// Name название семейства
func (t *ReleaseTable) Name() string {
	return t.name
}

// Len количество записей
func (t *ReleaseTable) Len() int {
	return len(t.values)
}

// Lookup ищет период выхода для названия модели:
// точный ключ, затем каждый сегмент через "/", затем префикс по границе слова.
func (t *ReleaseTable) Lookup(model string) (int, bool) {
	key := normalizeModelKey(model)
	if v, ok := t.values[key]; ok {
		return v, true
	}

	if strings.Contains(key, "/") {
		for _, seg := range strings.Split(key, "/") {
			if v, ok := t.values[strings.TrimSpace(seg)]; ok {
				return v, true
			}
		}
	}

	for _, e := range t.entries {
		if key == e.key || strings.HasPrefix(key, e.key+" ") || strings.HasPrefix(e.key, key+" ") {
			return e.value, true
		}
	}
	return 0, false
}

var (
	iPhoneTable = newReleaseTable("iPhone", iPhoneRelease)
	iPadTable   = newReleaseTable("iPad", iPadRelease)
	galaxyTable = newReleaseTable("Galaxy", galaxyRelease)
	xperiaTable = newReleaseTable("Xperia", xperiaRelease)
	pixelTable  = newReleaseTable("Pixel", pixelRelease)
	huaweiTable = newReleaseTable("HUAWEI", huaweiRelease)
)

// brandTables порядок проверки важен: "iphone" раньше "ipad"
var brandTables = []struct {
	needle string
	table  *ReleaseTable
}{
	{"iphone", iPhoneTable},
	{"ipad", iPadTable},
	{"galaxy", galaxyTable},
	{"xperia", xperiaTable},
	{"pixel", pixelTable},
	{"huawei", huaweiTable},
}

// TableForBrand выбирает таблицу по вхождению названия семейства в бренд
func TableForBrand(brand string) *ReleaseTable {
	b := strings.ToLower(brand)
	for _, bt := range brandTables {
		if strings.Contains(b, bt.needle) {
			return bt.table
		}
	}
	return nil
}

// ReleaseSortKey ключ сортировки модели по дате выхода (меньше значит старше).
// Без таблицы или совпадения: номер поколения × 1000, иначе UnknownReleaseKey.
func ReleaseSortKey(model, brand string) int {
	if table := TableForBrand(brand); table != nil {
		if v, ok := table.Lookup(model); ok {
			return v
		}
	}

	if gen := extractGeneration(model); gen > 0 {
		return gen * generationWeight
	}
	return UnknownReleaseKey
}

// CompareModels сравнивает модели по ключу выхода, затем лексически
func CompareModels(a, b, brand string) int {
	ka, kb := ReleaseSortKey(a, brand), ReleaseSortKey(b, brand)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// SortModels возвращает копию списка моделей в порядке выхода
func SortModels(models []string, brand string) []string {
	out := append([]string(nil), models...)
	sort.SliceStable(out, func(i, j int) bool {
		return CompareModels(out[i], out[j], brand) < 0
	})
	return out
}

// ModelGroupKey ключ плитки модели: поколение + квалификатор mini/Plus/ProMax.
// "12", "12 Pro" и "12/12Pro" попадают в одну группу "12".
func ModelGroupKey(model string) string {
	gen := extractGeneration(model)
	if gen == 0 {
		if trimmed := strings.TrimSpace(model); trimmed != "" {
			return trimmed
		}
		return "other"
	}

	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "mini"):
		return fmt.Sprintf("%dmini", gen)
	case strings.Contains(lower, "plus"):
		return fmt.Sprintf("%dPlus", gen)
	case strings.Contains(lower, "promax"), strings.Contains(lower, "pro max"):
		return fmt.Sprintf("%dProMax", gen)
	}
	return strconv.Itoa(gen)
}

// normalizeModelKey приводит название к виду ключей таблиц
func normalizeModelKey(s string) string {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	key = strings.ReplaceAll(key, "pro max", "promax")
	return strings.TrimSpace(strings.ReplaceAll(key, "\u3000", " "))
}

// extractGeneration первое число в названии, 0 если цифр нет
func extractGeneration(model string) int {
	start := -1
	for i := 0; i < len(model); i++ {
		c := model[i]
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoiCapped(model[start:i])
		}
	}
	if start >= 0 {
		return atoiCapped(model[start:])
	}
	return 0
}

// atoiCapped не дает переполнить ключ на очень длинных цифровых строках
func atoiCapped(digits string) int {
	const maxGeneration = 1_000_000
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxGeneration {
		return maxGeneration
	}
	return n
}
