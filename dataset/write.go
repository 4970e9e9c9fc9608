package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Ranking CSV header.
var rankingHeader = []string{"rank", "alternative", "closeness"}

// WriteWeighted writes ds in the weighted layout with the given weights,
// so the file can be fed straight back to ReadFile with LayoutWeighted.
// This is the "TOPSIS-ready" export of a CRITIC run.
func WriteWeighted(w io.Writer, ds Dataset, weights []float64, opts ...Option) error {
	_, n := ds.Shape()
	if len(weights) != n || len(ds.CriteriaNames) != n || len(ds.Directions) != n {
		return fmt.Errorf("%w: %d weights, %d names, %d directions for %d criteria",
			ErrInvalidDataset, len(weights), len(ds.CriteriaNames), len(ds.Directions), n)
	}
	if len(ds.AlternativeNames) != len(ds.Matrix) {
		return fmt.Errorf("%w: %d alternative names for %d rows", ErrInvalidDataset, len(ds.AlternativeNames), len(ds.Matrix))
	}

	cw := newCSVWriter(w, opts...)
	names := append([]string{""}, ds.CriteriaNames...)
	dirs := make([]string, 0, n+1)
	ws := make([]string, 0, n+1)
	dirs = append(dirs, "")
	ws = append(ws, "")
	for j := 0; j < n; j++ {
		dirs = append(dirs, ds.Directions[j].String())
		ws = append(ws, formatFloat(weights[j]))
	}
	records := [][]string{names, dirs, ws}
	for i, row := range ds.Matrix {
		rec := make([]string, 0, n+1)
		rec = append(rec, ds.AlternativeNames[i])
		for _, v := range row {
			rec = append(rec, formatFloat(v))
		}
		records = append(records, rec)
	}

	return flush(cw, records)
}

// WriteRanking writes one row per alternative ordered by rank (best first):
// rank, alternative name, closeness.
func WriteRanking(w io.Writer, names []string, closeness []float64, ranking []int, opts ...Option) error {
	if len(names) != len(closeness) || len(names) != len(ranking) {
		return fmt.Errorf("%w: %d names, %d scores, %d ranks", ErrInvalidDataset, len(names), len(closeness), len(ranking))
	}
	order := make([]int, len(ranking))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return ranking[order[a]] < ranking[order[b]] })

	records := make([][]string, 0, len(order)+1)
	records = append(records, rankingHeader)
	for _, i := range order {
		records = append(records, []string{strconv.Itoa(ranking[i]), names[i], formatFloat(closeness[i])})
	}

	return flush(newCSVWriter(w, opts...), records)
}

// WriteWeights writes criterion, direction, weight rows.
func WriteWeights(w io.Writer, ds Dataset, weights []float64, opts ...Option) error {
	if len(weights) != len(ds.CriteriaNames) || len(weights) != len(ds.Directions) {
		return fmt.Errorf("%w: %d weights for %d criteria", ErrInvalidDataset, len(weights), len(ds.CriteriaNames))
	}
	records := make([][]string, 0, len(weights)+1)
	records = append(records, []string{"criterion", "direction", "weight"})
	for j, wt := range weights {
		records = append(records, []string{ds.CriteriaNames[j], ds.Directions[j].String(), formatFloat(wt)})
	}

	return flush(newCSVWriter(w, opts...), records)
}

func newCSVWriter(w io.Writer, opts ...Option) *csv.Writer {
	o := gatherOptions(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = o.delimiter

	return cw
}

func flush(cw *csv.Writer, records [][]string) error {
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
