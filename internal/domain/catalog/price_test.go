package catalog

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

// TestParsePrice проверяет разбор текстовой цены
func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"пусто", "", 0},
		{"цена по запросу", "価格指定", 0},
		{"знак иены и запятые", "¥12,800", 12800},
		{"полноширинный знак", "￥ 3,000 ", 3000},
		{"без форматирования", "8000", 8000},
		{"дробная часть отбрасывается", "1299.99", 1299},
		{"текст", "abc", 0},
		{"только пробелы", "   ", 0},
		{"отрицательное", "-500", 0},
		{"бесконечность", "Infinity", 0},
		{"NaN", "NaN", 0},
		{"экспонента", "1e3", 1000},
		{"BOM", "\uFEFF4500", 4500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePrice(tt.input); got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestFormatPrice проверяет отображение цены
func TestFormatPrice(t *testing.T) {
	tests := []struct {
		yen  int64
		want string
	}{
		{0, "店頭見積"},
		{1, "¥1"},
		{999, "¥999"},
		{1000, "¥1,000"},
		{12800, "¥12,800"},
		{1234567, "¥1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.yen); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.yen, got, tt.want)
		}
	}
}

// TestParsePrice_FormattedRoundTrip разбор отформатированной цены возвращает исходное число
func TestParsePrice_FormattedRoundTrip(t *testing.T) {
	faker := gofakeit.New(42)
	for i := 0; i < 200; i++ {
		yen := int64(faker.Number(1, 50_000_000))
		formatted := FormatPrice(yen)
		if got := ParsePrice(formatted); got != yen {
			t.Fatalf("ParsePrice(FormatPrice(%d)) = %d (formatted %q)", yen, got, formatted)
		}
	}
}
