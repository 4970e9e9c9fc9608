package decision

import (
	"fmt"
	"strings"
)

// Direction tells whether larger (Benefit) or smaller (Cost) raw values of a
// criterion are preferable.
type Direction int

const (
	// Benefit criteria prefer larger values (e.g. profit).
	Benefit Direction = iota

	// Cost criteria prefer smaller values (e.g. price).
	Cost
)

// Canonical text forms, shared by String and MarshalText.
const (
	benefitText = "max"
	costText    = "min"
)

// String returns "max" for Benefit and "min" for Cost.
func (d Direction) String() string {
	switch d {
	case Benefit:
		return benefitText
	case Cost:
		return costText
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is Benefit or Cost.
func (d Direction) Valid() bool { return d == Benefit || d == Cost }

// ParseDirection maps a textual direction onto Benefit or Cost.
// Matching is case-insensitive and ignores surrounding spaces.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maks", "fayda", "benefit":
		return Benefit, nil
	case "min", "maliyet", "cost":
		return Cost, nil
	default:
		return Benefit, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// IsDirection reports whether s parses as a direction.
func IsDirection(s string) bool {
	_, err := ParseDirection(s)

	return err == nil
}

// MarshalText implements encoding.TextMarshaler (JSON, YAML and TOML use it).
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// ParseDirections parses a slice of textual directions, reporting the first
// offending index.
func ParseDirections(ss []string) ([]Direction, error) {
	out := make([]Direction, len(ss))
	for i, s := range ss {
		d, err := ParseDirection(s)
		if err != nil {
			return nil, fmt.Errorf("direction %d: %w", i, err)
		}
		out[i] = d
	}

	return out, nil
}
