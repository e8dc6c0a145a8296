package numerator

// Strategy defines the code generation strategy.
type Strategy int

const (
	// StrategyStrict uses UPDATE ... RETURNING for every code.
	// Sequential without gaps; suitable for accounting documents.
	StrategyStrict Strategy = iota

	// StrategyCached allocates ranges of numbers in memory.
	// Much faster, but restarts leave gaps; suitable for internal
	// documents (orders, shipments).
	StrategyCached
)

// Options configures code generation.
type Options struct {
	Strategy Strategy

	// RangeSize is how many numbers to reserve at once in Cached
	// strategy. Default is 50.
	RangeSize int64
}

// DefaultOptions returns the standard options (Strict).
func DefaultOptions() *Options {
	return &Options{
		Strategy: StrategyStrict,
	}
}

// Config holds the numbering configuration for one document type.
type Config struct {
	// Prefix added to all codes (e.g. "BO", "ID")
	Prefix string

	// IncludeYear adds the year segment to the code
	IncludeYear bool

	// PadWidth is the minimum counter width (default 5)
	PadWidth int

	// ResetPeriod: "year", "month", "never"
	ResetPeriod string
}

// DefaultConfig returns sensible defaults for prefix.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: "year",
	}
}
