package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcdm/decision"
)

// ReadFile opens path, picks the format from its extension and decodes it.
// The returned dataset has defaults filled in and has passed Validate.
func ReadFile(path string, opts ...Option) (Dataset, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Dataset{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	ds, err := Decode(data, f, opts...)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return ds, nil
}

// Read decodes a dataset of format f from r. See ReadFile.
func Read(r io.Reader, f Format, opts ...Option) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: read: %w", err)
	}

	return Decode(data, f, opts...)
}

// Decode parses data according to f, fills defaults and validates.
func Decode(data []byte, f Format, opts ...Option) (Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Dataset{}, ErrEmptyInput
	}
	o := gatherOptions(opts...)

	var (
		ds  Dataset
		err error
	)
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &ds)
	case FormatJSON:
		err = json.Unmarshal(data, &ds)
	case FormatTOML:
		err = toml.Unmarshal(data, &ds)
	case FormatCSV:
		ds, err = decodeCSV(data, o)
	default:
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: decode %s: %w", f, err)
	}

	ds.FillDefaults()
	if err = ds.Validate(); err != nil {
		return Dataset{}, err
	}

	return ds, nil
}

func decodeCSV(data []byte, o options) (Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = o.delimiter
	r.FieldsPerRecord = -1 // spreadsheets export ragged trailing cells
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return Dataset{}, err
	}
	records = dropBlankRecords(records)
	if len(records) == 0 {
		return Dataset{}, ErrEmptyInput
	}

	layout := o.layout
	if layout == LayoutAuto {
		layout = detectLayout(records[0])
	}
	switch layout {
	case LayoutAdvanced:
		return decodeAdvanced(records)
	case LayoutWeighted:
		return decodeWeighted(records)
	default:
		return decodeSimple(records), nil
	}
}

// detectLayout reports LayoutAdvanced when the header has at least one cell
// after the first column and every such non-empty cell is a direction alias.
func detectLayout(header []string) Layout {
	cells := nonEmpty(tail(header))
	if len(cells) == 0 {
		return LayoutSimple
	}
	for _, cell := range cells {
		if !decision.IsDirection(cell) {
			return LayoutSimple
		}
	}

	return LayoutAdvanced
}

// decodeSimple: row 0 names every criterion; every criterion is a benefit.
func decodeSimple(records [][]string) Dataset {
	names := nonEmpty(tail(records[0]))
	ds := Dataset{
		CriteriaNames: names,
		Directions:    make([]decision.Direction, len(names)),
	}
	ds.AlternativeNames, ds.Matrix = dataRows(records[1:], len(names), false)

	return ds
}

// decodeAdvanced: row 0 directions, row 1 names, then data. Rows whose label
// starts with a direction word are summary rows and are skipped.
func decodeAdvanced(records [][]string) (Dataset, error) {
	if len(records) < 2 {
		return Dataset{}, fmt.Errorf("%w: advanced layout needs a direction row and a name row", ErrEmptyInput)
	}
	var ds Dataset
	for _, cell := range nonEmpty(tail(records[0])) {
		d, err := decision.ParseDirection(cell)
		if err != nil {
			return Dataset{}, err
		}
		ds.Directions = append(ds.Directions, d)
	}
	ds.CriteriaNames = nonEmpty(tail(records[1]))
	ds.AlternativeNames, ds.Matrix = dataRows(records[2:], len(ds.CriteriaNames), true)

	return ds, nil
}

// decodeWeighted: row 0 names, row 1 directions (unknown → benefit),
// row 2 weights, then data.
func decodeWeighted(records [][]string) (Dataset, error) {
	if len(records) < 3 {
		return Dataset{}, fmt.Errorf("%w: weighted layout needs name, direction and weight rows", ErrEmptyInput)
	}
	names := nonEmpty(tail(records[0]))
	n := len(names)
	ds := Dataset{
		CriteriaNames: names,
		Directions:    make([]decision.Direction, n),
		Weights:       make([]float64, n),
	}
	dirCells, weightCells := padded(tail(records[1]), n), padded(tail(records[2]), n)
	for j := 0; j < n; j++ {
		if d, err := decision.ParseDirection(dirCells[j]); err == nil {
			ds.Directions[j] = d
		}
		ds.Weights[j] = ParseValue(weightCells[j])
	}
	ds.AlternativeNames, ds.Matrix = dataRows(records[3:], n, false)

	return ds, nil
}

// dataRows turns labelled rows into names and n parsed values per row.
// Rows with a blank label are ignored.
func dataRows(records [][]string, n int, skipSummary bool) (names []string, matrix [][]float64) {
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		label := strings.TrimSpace(rec[0])
		if label == "" || (skipSummary && isSummaryLabel(label)) {
			continue
		}
		cells := padded(tail(rec), n)
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = ParseValue(cells[j])
		}
		names = append(names, label)
		matrix = append(matrix, row)
	}

	return names, matrix
}

func isSummaryLabel(label string) bool {
	l := strings.ToLower(label)

	return strings.HasPrefix(l, "min") || strings.HasPrefix(l, "max") || strings.HasPrefix(l, "maks")
}

func dropBlankRecords(records [][]string) [][]string {
	out := records[:0]
	for _, rec := range records {
		if len(nonEmpty(rec)) > 0 {
			out = append(out, rec)
		}
	}

	return out
}

func tail(rec []string) []string {
	if len(rec) < 2 {
		return nil
	}

	return rec[1:]
}

func nonEmpty(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}

	return out
}

// padded returns exactly n cells, truncating or extending with blanks.
func padded(cells []string, n int) []string {
	out := make([]string, n)
	copy(out, cells)

	return out
}
