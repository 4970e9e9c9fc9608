package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mcdm/analysis"
	"github.com/katalvlaran/mcdm/dataset"
)

func newExportCmd(a *app) *cobra.Command {
	var weightsOnly bool

	c := &cobra.Command{
		Use:   "export <critic|topsis|rank> <out.csv>",
		Short: "Write the last saved result of a kind as CSV",
		Long: `export writes a saved result as CSV.

critic results are written in the weighted layout, ready to be fed to
"mcdm topsis --layout weighted"; --weights-only writes just the weight table.
topsis and rank results are written as a ranking sorted best first.
Use "-" as the file name to write to standard output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := analysis.ParseKind(args[0])
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			rep, err := st.Load(kind)
			if err != nil {
				return err
			}

			w, closeFn, err := createOutput(args[1], cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err = exportReport(w, rep, weightsOnly, dataset.WithDelimiter(a.cfg.Delimiter())); err != nil {
				_ = closeFn()

				return err
			}
			if err = closeFn(); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			a.log.Info("exported", zap.String("kind", string(kind)), zap.String("file", args[1]))

			return nil
		},
	}
	c.Flags().BoolVar(&weightsOnly, "weights-only", false, "write only criterion, direction and weight rows")

	return c
}

func exportReport(w io.Writer, rep analysis.Report, weightsOnly bool, opts ...dataset.Option) error {
	ds := dataset.Dataset{
		CriteriaNames:    rep.CriteriaNames,
		Directions:       rep.Directions,
		AlternativeNames: rep.AlternativeNames,
		Matrix:           rep.DecisionMatrix,
	}
	switch {
	case weightsOnly:
		return dataset.WriteWeights(w, ds, rep.Weights, opts...)
	case rep.Topsis == nil:
		return dataset.WriteWeighted(w, ds, rep.Weights, opts...)
	default:
		return dataset.WriteRanking(w, rep.AlternativeNames, rep.Topsis.Closeness, rep.Topsis.Ranking, opts...)
	}
}

func createOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("export: %w", err)
	}

	return f, f.Close, nil
}
