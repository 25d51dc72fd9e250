package detect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Shared token recognizers consumed by all detectors. Each detector used to
// carry its own copy of these patterns; they live here so date/time/amount
// matching behaves identically everywhere.

const monthAlternation = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec`

var (
	isoDateRe      = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	numericDateRe  = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	monthDayYearRe = regexp.MustCompile(`(?i)\b(` + monthAlternation + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	dayMonthYearRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthAlternation + `)\.?,?\s+(\d{4})\b`)

	timeRe = regexp.MustCompile(`(?i)\b(?:1[0-2]|0?[1-9])(?::[0-5]\d)?\s*[ap]\.?m\.?\b|\b(?:1[0-2]|0?[1-9]):[0-5]\d\b`)

	labeledAmountRe = regexp.MustCompile(`(?i)\b(?:total|amount|paid)\b[:\s]*\$?\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	currencyRe      = regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)

	bulletLineRe   = regexp.MustCompile(`^\s*[-*•◦▪□☐]\s+(.+)$`)
	numberedLineRe = regexp.MustCompile(`^\s*\d{1,3}[.)]\s+(.+)$`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// findDate returns the first recognizable date token in text, normalized to
// an ISO calendar date where possible.
func findDate(text string) (string, bool) {
	if m := isoDateRe.FindString(text); m != "" {
		return m, true
	}
	if d, ok := findNumericDate(text); ok {
		return d, true
	}
	if m := monthDayYearRe.FindStringSubmatch(text); m != nil {
		return namedDate(m[1], m[2], m[3]), true
	}
	if m := dayMonthYearRe.FindStringSubmatch(text); m != nil {
		return namedDate(m[2], m[1], m[3]), true
	}
	return "", false
}

// findNumericDate matches only numeric MM/DD/YYYY-style tokens. Month and
// day are assumed US-ordered; they are swapped when the first number cannot
// be a month.
func findNumericDate(text string) (string, bool) {
	m := numericDateRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	if month > 12 && day <= 12 {
		month, day = day, month
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func namedDate(month, day, year string) string {
	key := strings.ToLower(month)
	if len(key) > 3 {
		key = key[:3]
	}
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)
	return fmt.Sprintf("%04d-%02d-%02d", y, monthNumbers[key], d)
}

// findTime returns the first 12-hour time token in text, as written.
func findTime(text string) (string, bool) {
	m := timeRe.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

// findLabeledAmount matches a "total/amount/paid: $X.XX" pattern.
func findLabeledAmount(text string) (float64, bool) {
	m := labeledAmountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return parseAmount(m[1])
}

// findCurrencyAmount matches any generic "$X.XX" token.
func findCurrencyAmount(text string) (float64, bool) {
	m := currencyRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return parseAmount(m[1])
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// bulletContent returns the text content of a bullet or numbered list line.
func bulletContent(line string) (string, bool) {
	if m := bulletLineRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := numberedLineRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
