package pages

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func required(s string) bool { return s != "" }

func maxLen(s string, n int) bool { return utf8.RuneCountInString(s) <= n }

// isInt accepts an empty string; pair it with required when the field is mandatory.
func isInt(s string) bool {
	if s == "" {
		return true
	}
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

func isNumber(s string) bool {
	if s == "" {
		return true
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func isID(s string) bool {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return err == nil && id > 0
}

// toInt, toFloat and toID are only called on values that already passed validation;
// blank optional fields become zero.
func toInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func toFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func toID(s string) uint {
	id, _ := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return uint(id)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr[T any](v T) *T { return &v }
