package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mcdm/critic"
	"github.com/katalvlaran/mcdm/dataset"
	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/topsis"
)

// Runner executes analyses. The zero value is not usable; call NewRunner.
// A Runner holds no per-run state and is safe for concurrent use.
type Runner struct {
	log            *zap.Logger
	now            func() time.Time
	newID          func() string
	normalizeInput bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock overrides time.Now for report timestamps.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("analysis: WithClock: nil clock")
	}

	return func(r *Runner) { r.now = now }
}

// WithIDSource overrides the random UUID generator for report IDs.
func WithIDSource(newID func() string) Option {
	if newID == nil {
		panic("analysis: WithIDSource: nil id source")
	}

	return func(r *Runner) { r.newID = newID }
}

// WithNormalizedWeights rescales dataset weights to sum to 1 before TOPSIS.
// Closeness is invariant to a common weight factor, so only the reported
// weighted matrix and distances change.
func WithNormalizedWeights() Option {
	return func(r *Runner) { r.normalizeInput = true }
}

// NewRunner returns a Runner with a no-op logger, time.Now and random UUIDs.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		log:   zap.NewNop(),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run dispatches on kind.
func (r *Runner) Run(kind Kind, ds dataset.Dataset) (Report, error) {
	switch kind {
	case KindCritic:
		return r.Critic(ds)
	case KindTopsis:
		return r.Topsis(ds)
	case KindCriticTopsis:
		return r.CriticTopsis(ds)
	}

	return Report{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Critic derives objective weights for ds.
func (r *Runner) Critic(ds dataset.Dataset) (Report, error) {
	rep, err := r.begin(KindCritic, ds)
	if err != nil {
		return Report{}, err
	}
	res, err := critic.Run(ds.Matrix, ds.Directions)
	if err != nil {
		return Report{}, r.fail(rep, err)
	}
	rep.Critic = &res
	rep.Weights = res.Weights
	r.done(rep)

	return rep, nil
}

// Topsis ranks ds with its own weights. A dataset without weights fails
// with ErrNoWeights.
func (r *Runner) Topsis(ds dataset.Dataset) (Report, error) {
	rep, err := r.begin(KindTopsis, ds)
	if err != nil {
		return Report{}, err
	}
	if !ds.HasWeights() {
		return Report{}, r.fail(rep, ErrNoWeights)
	}
	weights := ds.Weights
	if r.normalizeInput {
		weights = decision.NormalizeWeights(weights)
	}
	res, err := topsis.Run(ds.Matrix, weights, ds.Directions)
	if err != nil {
		return Report{}, r.fail(rep, err)
	}
	rep.Topsis = &res
	rep.Weights = res.WeightsUsed
	r.done(rep)

	return rep, nil
}

// CriticTopsis feeds CRITIC weights into TOPSIS. Dataset weights are ignored.
func (r *Runner) CriticTopsis(ds dataset.Dataset) (Report, error) {
	rep, err := r.begin(KindCriticTopsis, ds)
	if err != nil {
		return Report{}, err
	}
	cr, err := critic.Run(ds.Matrix, ds.Directions)
	if err != nil {
		return Report{}, r.fail(rep, err)
	}
	tr, err := topsis.Run(ds.Matrix, cr.Weights, ds.Directions)
	if err != nil {
		return Report{}, r.fail(rep, err)
	}
	rep.Critic = &cr
	rep.Topsis = &tr
	rep.Weights = cr.Weights
	r.done(rep)

	return rep, nil
}

// begin validates ds and stamps a fresh report with copies of its metadata.
func (r *Runner) begin(kind Kind, ds dataset.Dataset) (Report, error) {
	ds.FillDefaults()
	if err := ds.Validate(); err != nil {
		r.log.Warn("rejected dataset", zap.String("kind", string(kind)), zap.Error(err))

		return Report{}, fmt.Errorf("analysis: %s: %w", kind, err)
	}

	return Report{
		ID:               r.newID(),
		Kind:             kind,
		CreatedAt:        r.now().UTC(),
		CriteriaNames:    append([]string(nil), ds.CriteriaNames...),
		AlternativeNames: append([]string(nil), ds.AlternativeNames...),
		Directions:       append([]decision.Direction(nil), ds.Directions...),
		DecisionMatrix:   copyRows(ds.Matrix),
	}, nil
}

func (r *Runner) fail(rep Report, err error) error {
	r.log.Warn("analysis failed", zap.String("kind", string(rep.Kind)), zap.String("id", rep.ID), zap.Error(err))

	return fmt.Errorf("analysis: %s: %w", rep.Kind, err)
}

func (r *Runner) done(rep Report) {
	m, n := len(rep.DecisionMatrix), len(rep.CriteriaNames)
	fields := []zap.Field{
		zap.String("kind", string(rep.Kind)),
		zap.String("id", rep.ID),
		zap.Int("alternatives", m),
		zap.Int("criteria", n),
		zap.Float64s("weights", rep.Weights),
	}
	if best := rep.Best(); best != "" {
		fields = append(fields, zap.String("best", best))
	}
	r.log.Info("analysis complete", fields...)
}

func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
