// Package analysis runs the decision engines on a dataset.Dataset and wraps
// the outcome in a Report carrying the problem metadata, a run ID and a
// timestamp.
//
// Three runs are supported:
//
//	Critic        objective weights only
//	Topsis        ranking with the dataset's own weights
//	CriticTopsis  CRITIC weights fed into TOPSIS
//
// The engines themselves never log; a Runner logs one line per run through
// the injected *zap.Logger (a no-op logger by default).
package analysis
