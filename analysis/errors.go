package analysis

import "errors"

var (
	// ErrNoWeights indicates a TOPSIS run on a dataset without a weight vector.
	ErrNoWeights = errors.New("analysis: dataset has no weights")

	// ErrUnknownKind indicates an analysis kind name that is not recognised.
	ErrUnknownKind = errors.New("analysis: unknown kind")
)
