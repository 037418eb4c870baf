package catalog

import (
	"strconv"
	"strings"
)

// DedupeKey составной ключ позиции: brand, model, part_group, part_name, price_yen
func DedupeKey(item NormalizedItem) string {
	partGroup := ""
	if item.PartGroup != nil {
		partGroup = *item.PartGroup
	}
	return strings.Join([]string{
		item.Brand,
		item.Model,
		partGroup,
		item.PartName,
		strconv.FormatInt(item.PriceYen, 10),
	}, "\x00")
}

// DedupeItems оставляет первое вхождение каждого ключа, сохраняя порядок
func DedupeItems(items []NormalizedItem) []NormalizedItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]NormalizedItem, 0, len(items))
	for _, item := range items {
		key := DedupeKey(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
