package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DisplayDateLayout is the DD.MM.YYYY layout used for every rendered date
const DisplayDateLayout = "02.01.2006"

var dateSeparators = regexp.MustCompile(`[./-]`)

// Fallback layouts tried when the three-part heuristic does not apply.
// Layouts without a zone are read in local time.
var fallbackDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
	time.ANSIC,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"Mon Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// FormatDate renders t as DD.MM.YYYY
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// FormatCreationDate normalises a stored creation date to DD.MM.YYYY.
//
// Text made of three numeric parts separated by '.', '-' or '/' is read as
// year-first when the first part has four characters or exceeds 31, and as
// day-first otherwise. Anything else is parsed as a timestamp. Input that
// cannot be read either way is returned unchanged; empty input stays empty.
func FormatCreationDate(raw string) string {
	if raw == "" {
		return ""
	}

	parts := dateSeparators.Split(raw, -1)
	if len(parts) == 3 {
		first, okFirst := parseDatePart(parts[0])
		second, okSecond := parseDatePart(parts[1])
		third, okThird := parseDatePart(parts[2])

		if okFirst && okSecond && okThird {
			yearFirst := utf8.RuneCountInString(parts[0]) == 4 || first > 31

			day, month, year := first, second, third
			if yearFirst {
				day, year = third, first
			}

			return padDatePart(day) + "." + padDatePart(month) + "." + formatNumber(year)
		}
	}

	if t, ok := parseTimestamp(raw); ok {
		return FormatDate(t)
	}

	return raw
}

// parseDatePart reads a part the way loose numeric coercion does:
// surrounding whitespace is ignored and an empty part counts as zero.
func parseDatePart(part string) (float64, bool) {
	trimmed := strings.TrimSpace(part)
	if trimmed == "" {
		return 0, true
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func parseTimestamp(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	for _, layout := range fallbackDateLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t.In(time.Local), true
		}
	}
	return time.Time{}, false
}

func padDatePart(value float64) string {
	s := formatNumber(value)
	if len(s) < 2 {
		s = strings.Repeat("0", 2-len(s)) + s
	}
	return s
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
