package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mcdm/analysis"
	"github.com/katalvlaran/mcdm/dataset"
)

var analyzeHelp = map[analysis.Kind]struct{ use, short string }{
	analysis.KindCritic:       {"critic <file>", "Derive objective criterion weights with CRITIC"},
	analysis.KindTopsis:       {"topsis <file>", "Rank alternatives with TOPSIS using the file's weights"},
	analysis.KindCriticTopsis: {"rank <file>", "Rank alternatives with TOPSIS using CRITIC weights"},
}

func newAnalyzeCmd(a *app, kind analysis.Kind) *cobra.Command {
	var normalizeWeights bool

	help := analyzeHelp[kind]
	c := &cobra.Command{
		Use:   help.use,
		Short: help.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.readOptions()
			if err != nil {
				return err
			}
			if kind == analysis.KindTopsis && !cmd.Flags().Changed("layout") && a.cfg.CSV.Layout == "" {
				opts = append(opts, dataset.WithLayout(dataset.LayoutWeighted))
			}
			ds, err := dataset.ReadFile(args[0], opts...)
			if err != nil {
				return err
			}

			runOpts := []analysis.Option{analysis.WithLogger(a.log.Named("analysis"))}
			if normalizeWeights {
				runOpts = append(runOpts, analysis.WithNormalizedWeights())
			}
			rep, err := analysis.NewRunner(runOpts...).Run(kind, ds)
			if err != nil {
				return err
			}

			if a.cfg.Save {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				if err = st.Save(rep); err != nil {
					return err
				}
				a.log.Info("result saved", zap.String("path", st.Path(kind)))
			}

			return render(cmd.OutOrStdout(), a.cfg.Output, rep)
		},
	}
	if kind == analysis.KindTopsis {
		c.Flags().BoolVar(&normalizeWeights, "normalize-weights", false, "rescale the file's weights to sum to 1")
	}

	return c
}
