package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcdm/analysis"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "show <critic|topsis|rank>",
		Short:     "Print the last saved result of a kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"critic", "topsis", "rank", "critic_topsis"},
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

			return render(cmd.OutOrStdout(), a.cfg.Output, rep)
		},
	}
}
