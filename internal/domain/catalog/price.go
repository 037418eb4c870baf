package catalog

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// PriceOnRequest маркер "цена по запросу" в колонке цены
const PriceOnRequest = "価格指定"

// QuoteInStoreLabel отображается вместо нулевой цены
const QuoteInStoreLabel = "店頭見積"

// ParsePrice преобразует текст ячейки цены в целое число иен.
// Удаляет знаки иены, запятые и пробелы; пустое значение, "価格指定",
// нечисловой текст, бесконечность и отрицательные значения дают 0.
// Дробная часть отбрасывается.
func ParsePrice(value string) int64 {
	if value == "" {
		return 0
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '¥' || r == '￥' || r == ',':
			return -1
		case unicode.IsSpace(r) || r == '\uFEFF':
			return -1
		}
		return r
	}, value)

	if cleaned == "" || cleaned == PriceOnRequest {
		return 0
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	n = math.Trunc(n)
	if n <= 0 {
		return 0
	}
	if n >= math.MaxInt64 {
		return 0
	}
	return int64(n)
}

// FormatPrice форматирует цену для прайс-листа: 0 -> "店頭見積", иначе "¥12,800"
func FormatPrice(yen int64) string {
	if yen == 0 {
		return QuoteInStoreLabel
	}

	sign := ""
	if yen < 0 {
		sign = "-"
		yen = -yen
	}

	digits := strconv.FormatInt(yen, 10)
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString("¥")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
