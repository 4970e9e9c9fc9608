package decision

import "errors"

var (
	// ErrInputShape marks every shape or length violation of a decision input:
	// empty or ragged matrices, and direction/weight vectors whose length
	// differs from the matrix column count.
	ErrInputShape = errors.New("decision: invalid input shape")

	// ErrUnknownDirection indicates a direction literal that is neither benefit nor cost.
	ErrUnknownDirection = errors.New("decision: unknown criterion direction")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("decision: invalid weight")
)
