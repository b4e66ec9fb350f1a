package export

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Formatting rules shared by every rendering backend so a report looks the
// same regardless of the output format.

// formatLabel turns an identifier-form key into a human title:
// "total_ventas" -> "Total Ventas".
func formatLabel(key string) string {
	return titleCase(strings.ReplaceAll(key, "_", " "))
}

// formatMetricValue renders integral floats as integers and passes every
// other numeric through; anything else is stringified.
func formatMetricValue(value any) any {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int64(v)
		}
		return v
	case float32:
		return formatMetricValue(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return v
	case decimal.Decimal:
		if v.IsInteger() {
			return v.IntPart()
		}
		return v.InexactFloat64()
	default:
		return fmt.Sprint(v)
	}
}

// formatCellValue maps nil to an empty string and booleans to the
// localized yes/no; numerics pass through, everything else is stringified.
func formatCellValue(value any) any {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "Sí"
		}
		return "No"
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return v
	case decimal.Decimal:
		return v.InexactFloat64()
	default:
		return fmt.Sprint(v)
	}
}

// cellString is formatCellValue forced into a string, for text-only
// surfaces such as PDF cells.
func cellString(value any) string {
	return fmt.Sprint(formatCellValue(value))
}

// titleCase uppercases the first letter of each space-separated word. The
// inputs are fixed snake_case identifiers, so no locale handling is
// needed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
