package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestReleaseSortKey проверяет поиск по таблицам и запасную эвристику
func TestReleaseSortKey(t *testing.T) {
	tests := []struct {
		name  string
		model string
		brand string
		want  int
	}{
		{"точный ключ", "SE", "iPhone", 201603},
		{"регистр и пробелы", "  XS   Max ", "iPhone", 201809},
		{"комбинированная метка", "12/12Pro", "iPhone", 202010},
		{"бренд содержит название семейства", "6s", "Apple iPhone", 201509},
		{"длинный ключ выигрывает", "Air 2 Wi-Fi", "iPad", 201410},
		{"ничья по длине: раньше вышедшая", "Pro", "iPad", 201511},
		{"Xperia римские номера", "1 II", "Xperia", 202006},
		{"Pixel", "7 Pro", "Google Pixel", 202210},
		{"HUAWEI", "P30", "HUAWEI", 201903},
		{"Galaxy", "S22", "Galaxy", 202202},
		{"нет таблицы: номер поколения", "Phone 2", "Nothing", 2 * generationWeight},
		{"нет совпадения в таблице", "Fold 99", "Galaxy", 99 * generationWeight},
		{"без цифр", "Redmi Note", "Xiaomi", UnknownReleaseKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReleaseSortKey(tt.model, tt.brand))
		})
	}
}

// TestSortModels порядок по выходу, а не лексический
func TestSortModels(t *testing.T) {
	got := SortModels([]string{"SE", "12", "X", "6", "未知"}, "iPhone")
	assert.Equal(t, []string{"6", "SE", "X", "12", "未知"}, got)

	// "6" вышел раньше "SE"
	assert.Equal(t, -1, CompareModels("6", "SE", "iPhone"))
	assert.Equal(t, 1, CompareModels("SE", "6", "iPhone"))
}

// TestCompareModels_TieBreak одинаковый ключ сравнивается лексически
func TestCompareModels_TieBreak(t *testing.T) {
	assert.Equal(t, -1, CompareModels("13", "13 Pro", "iPhone"))
	assert.Equal(t, 0, CompareModels("13", "13", "iPhone"))
}

// TestTableForBrand выбор таблицы по бренду
func TestTableForBrand(t *testing.T) {
	assert.Equal(t, "iPhone", TableForBrand("IPHONE").Name())
	assert.Equal(t, "iPad", TableForBrand("iPad").Name())
	assert.Equal(t, "Xperia", TableForBrand("Sony Xperia").Name())
	assert.Nil(t, TableForBrand("AQUOS"))
	assert.Greater(t, TableForBrand("Pixel").Len(), 0)
}

// TestModelGroupKey объединение родственных моделей
func TestModelGroupKey(t *testing.T) {
	tests := map[string]string{
		"12":         "12",
		"12 Pro":     "12",
		"12/12Pro":   "12",
		"12 mini":    "12mini",
		"14 Plus":    "14Plus",
		"12 Pro Max": "12ProMax",
		"11ProMax":   "11ProMax",
		"SE":         "SE",
		"  ":         "other",
	}
	for model, want := range tests {
		assert.Equal(t, want, ModelGroupKey(model), model)
	}
}
