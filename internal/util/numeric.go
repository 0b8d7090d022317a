package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reNonNumeric = regexp.MustCompile(`[^0-9.,-]`)

// ParseNumberPtBR converts a pt-BR formatted numeric string (period as
// thousands separator, comma as decimal separator) to a float. Returns nil
// when the input carries no parsable number; it never fails loudly.
func ParseNumberPtBR(input string) *float64 {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}
	s = reNonNumeric.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}
	// A comma anywhere means comma-decimal notation.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return FloatPtr(parsed)
}

// FormatNumber renders a parsed value as an integer string when it is
// integral (within 1e-9), otherwise as a decimal with up to 4 fractional
// digits and trailing zeros stripped. nil renders as the empty string.
func FormatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	rounded := math.Round(*v)
	if math.Abs(*v-rounded) < 1e-9 {
		return strconv.FormatInt(int64(rounded), 10)
	}
	out := strconv.FormatFloat(*v, 'f', 4, 64)
	out = strings.TrimRight(out, "0")
	out = strings.TrimRight(out, ".")
	return out
}

func FloatPtr(v float64) *float64 { return &v }

func StringPtr(v string) *string { return &v }
