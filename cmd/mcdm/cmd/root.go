package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/mcdm/analysis"
	"github.com/katalvlaran/mcdm/dataset"
	"github.com/katalvlaran/mcdm/internal/config"
	"github.com/katalvlaran/mcdm/internal/logging"
	"github.com/katalvlaran/mcdm/store"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile   string
	dataDir   string
	output    string
	delimiter string
	layout    string
	save      bool
	verbose   int

	cfg config.Config
	log *zap.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		return err
	}

	return nil
}

// NewRootCmd builds the command tree. Output goes to the command's
// configured writers, so tests can capture it with SetOut/SetErr.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "mcdm",
		Short: "Multi-criteria decision making with CRITIC and TOPSIS",
		Long: `mcdm derives objective criterion weights with CRITIC and ranks
alternatives with TOPSIS.

Input files may be YAML, JSON, TOML or CSV. CSV sheets use the simple,
advanced (direction row first) or weighted (names, directions, weights)
layout; simple and advanced are detected automatically.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (TOML; default $"+config.EnvConfig+")")
	pf.StringVar(&a.dataDir, "data-dir", config.DefaultDataDir, "directory for saved results")
	pf.StringVarP(&a.output, "output", "o", config.DefaultOutput, "output format: json, yaml or table")
	pf.StringVar(&a.delimiter, "delimiter", config.DefaultDelimiter, "CSV field delimiter")
	pf.StringVar(&a.layout, "layout", "auto", "CSV layout: auto, simple, advanced or weighted")
	pf.BoolVar(&a.save, "save", false, "save the result to the data directory")
	pf.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug)")

	root.AddCommand(
		newAnalyzeCmd(a, analysis.KindCritic),
		newAnalyzeCmd(a, analysis.KindTopsis),
		newAnalyzeCmd(a, analysis.KindCriticTopsis),
		newShowCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup resolves configuration (defaults < file < env < explicit flags)
// and builds the logger.
func (a *app) setup(flags *pflag.FlagSet, stderr io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("delimiter") {
		cfg.CSV.Delimiter = a.delimiter
	}
	if flags.Changed("layout") {
		cfg.CSV.Layout = a.layout
	}
	if flags.Changed("save") {
		cfg.Save = a.save
	}
	if flags.Changed("verbose") {
		cfg.Log.Level = logging.Verbosity(a.verbose)
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: stderr})
	if err != nil {
		return err
	}
	a.log = log.Named("mcdm")

	return nil
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.cfg.DataDir, a.log.Named("store"))
}

func (a *app) readOptions() ([]dataset.Option, error) {
	layout, err := dataset.ParseLayout(a.cfg.CSV.Layout)
	if err != nil {
		return nil, err
	}

	return []dataset.Option{
		dataset.WithDelimiter(a.cfg.Delimiter()),
		dataset.WithLayout(layout),
	}, nil
}
