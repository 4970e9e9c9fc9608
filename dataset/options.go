package dataset

import "unicode/utf8"

// Defaults.
const (
	// DefaultDelimiter separates CSV fields.
	DefaultDelimiter = ','

	// DefaultLayout lets the reader detect simple vs advanced sheets.
	DefaultLayout = LayoutAuto
)

const (
	panicDelimiterInvalid = "dataset: WithDelimiter: delimiter must be a valid, non-quote, non-newline rune"
	panicLayoutInvalid    = "dataset: WithLayout: unknown layout"
)

// Option configures Read, ReadFile and the CSV writers.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	delimiter rune
	layout    Layout
}

// WithDelimiter sets the CSV field separator (e.g. ';' for spreadsheets
// saved with comma decimals).
func WithDelimiter(r rune) Option {
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || !utf8.ValidRune(r) {
		panic(panicDelimiterInvalid)
	}

	return func(o *options) { o.delimiter = r }
}

// WithLayout forces a CSV layout instead of detecting it.
func WithLayout(l Layout) Option {
	if l < LayoutAuto || l > LayoutWeighted {
		panic(panicLayoutInvalid)
	}

	return func(o *options) { o.layout = l }
}

func gatherOptions(opts ...Option) options {
	o := options{delimiter: DefaultDelimiter, layout: DefaultLayout}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
