package catalog

import "strings"

const (
	pathJoiner        = ", "
	levelSeparator    = ">"
	partGroupJoiner   = " > "
	brandQualifierSep = ","
)

// SplitCategoryCell разбивает ячейку カテゴリ на независимые пути.
//
// Пути соединены ", ", но запятая встречается и внутри названий, поэтому
// куски склеиваются обратно по правилам:
//   - в накопленном нет ">", а в следующем куске есть: хвост пути был
//     отрезан до разделителя уровней, кусок приклеивается;
//   - и в накопленном, и в следующем куске по два и более ">": следующий
//     кусок начинает новый путь;
//   - в остальных случаях кусок приклеивается.
func SplitCategoryCell(cell string) []string {
	raw := strings.TrimSpace(cell)
	if raw == "" {
		return nil
	}
	if !strings.Contains(raw, pathJoiner) {
		return []string{raw}
	}

	chunks := strings.Split(raw, pathJoiner)
	out := make([]string, 0, len(chunks))
	cur := chunks[0]

	for _, next := range chunks[1:] {
		curLevels := strings.Count(cur, levelSeparator)
		nextLevels := strings.Count(next, levelSeparator)

		if curLevels == 0 && nextLevels > 0 {
			cur = cur + pathJoiner + next
			continue
		}
		if curLevels >= 2 && nextLevels >= 2 {
			out = append(out, cur)
			cur = next
			continue
		}
		cur = cur + pathJoiner + next
	}

	return append(out, cur)
}

// ParseCategoryPath разбирает один путь в порядке ブランド > 機種 > パーツ.
// Недостающие уровни заполняются "その他", строка никогда не отбрасывается.
// Путь в обратном порядке не исправляется.
func ParseCategoryPath(path string) CategoryPath {
	var parts []string
	for _, p := range strings.Split(path, levelSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) == 0 {
		return CategoryPath{Brand: OtherLabel, Model: OtherLabel, PartGroup: OtherLabel}
	}

	result := CategoryPath{
		Brand:     brandFromSegment(parts[0]),
		Model:     OtherLabel,
		PartGroup: OtherLabel,
	}
	if len(parts) >= 2 {
		result.Model = parts[1]
	}
	if len(parts) >= 3 {
		result.PartGroup = strings.Join(parts[2:], partGroupJoiner)
	}
	return result
}

// ResolveCategoryCell разбивает ячейку и разбирает каждый путь
func ResolveCategoryCell(cell string) []CategoryPath {
	paths := SplitCategoryCell(cell)
	out := make([]CategoryPath, 0, len(paths))
	for _, p := range paths {
		out = append(out, ParseCategoryPath(p))
	}
	return out
}

// brandFromSegment отрезает служебный префикс поставщика "xxx,iPhone" -> "iPhone"
func brandFromSegment(segment string) string {
	tokens := strings.Split(segment, brandQualifierSep)
	if last := strings.TrimSpace(tokens[len(tokens)-1]); last != "" {
		return last
	}
	return strings.TrimSpace(segment)
}
