package domain

import (
	"errors"
	"strings"
)

var ErrInvalidRange = errors.New("invalid range")

// Range selects one of the fixed dashboard windows ending at "now".
type Range string

const (
	Range24Hours Range = "24h"
	Range7Days   Range = "7d"
	Range30Days  Range = "30d"

	DefaultRange = Range7Days
)

var rangeHours = map[Range]int{
	Range24Hours: 24,
	Range7Days:   168,
	Range30Days:  720,
}

// ParseRange accepts "24h", "7d" or "30d". An empty string selects DefaultRange.
func ParseRange(s string) (Range, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRange, nil
	}
	r := Range(s)
	if _, ok := rangeHours[r]; !ok {
		return "", ErrInvalidRange
	}
	return r, nil
}

// Hours returns the window length, or 0 for an unknown range.
func (r Range) Hours() int {
	return rangeHours[r]
}
