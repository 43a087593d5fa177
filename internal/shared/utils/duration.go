package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatDuration renders a course length given in minutes as "HH:MM hours".
// Accepts any integer or float type and numeric text. Anything that is not a
// finite positive number renders as zero. The label stays plural for every
// value.
func FormatDuration(minutes interface{}) string {
	total := toMinutes(minutes)
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		total = 0
	}

	hours := math.Floor(total / 60)
	rest := math.Floor(math.Mod(total, 60))

	return fmt.Sprintf("%02.0f:%02.0f hours", hours, rest)
}

func toMinutes(value interface{}) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
