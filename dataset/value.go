package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue converts a spreadsheet cell to a number.
//
// A comma is read as the decimal separator. Blank cells, "nan", "none",
// "null", non-finite results and anything else that does not parse become 0.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
