package dataset

import "errors"

var (
	// ErrEmptyInput indicates a file or document without any decision data.
	ErrEmptyInput = errors.New("dataset: empty input")

	// ErrUnknownFormat indicates a file extension or format name that has no reader.
	ErrUnknownFormat = errors.New("dataset: unknown format")

	// ErrInvalidDataset indicates names, directions or weights that disagree
	// with the decision matrix.
	ErrInvalidDataset = errors.New("dataset: invalid dataset")
)
