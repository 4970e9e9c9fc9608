package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mcdm/decision"
)

// Dataset is one decision problem: m alternatives scored on n criteria.
type Dataset struct {
	CriteriaNames    []string             `json:"criteria_names" yaml:"criteria_names" toml:"criteria_names"`
	Directions       []decision.Direction `json:"criteria_types" yaml:"criteria_types" toml:"criteria_types"`
	AlternativeNames []string             `json:"alternative_names" yaml:"alternative_names" toml:"alternative_names"`
	Weights          []float64            `json:"weights,omitempty" yaml:"weights,omitempty" toml:"weights,omitempty"`
	Matrix           [][]float64          `json:"matrix" yaml:"matrix" toml:"matrix"`
}

// Format names a file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".csv", ".tsv", ".txt":
		return FormatCSV, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Layout selects how a CSV sheet is interpreted.
type Layout int

const (
	LayoutAuto Layout = iota
	LayoutSimple
	LayoutAdvanced
	LayoutWeighted
)

func (l Layout) String() string {
	switch l {
	case LayoutAuto:
		return "auto"
	case LayoutSimple:
		return "simple"
	case LayoutAdvanced:
		return "advanced"
	case LayoutWeighted:
		return "weighted"
	}

	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout is the inverse of Layout.String.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return LayoutAuto, nil
	case "simple":
		return LayoutSimple, nil
	case "advanced":
		return LayoutAdvanced, nil
	case "weighted", "topsis":
		return LayoutWeighted, nil
	}

	return LayoutAuto, fmt.Errorf("%w: layout %q", ErrUnknownFormat, s)
}
