package booking_order

import "loomline/internal/core/numerator"

const (
	// CodePrefix is the numerator prefix for booking orders.
	CodePrefix = "BO"

	// NumeratorStrategy: booking orders are internal documents, gaps in
	// the sequence are acceptable, so the cached strategy is fine.
	NumeratorStrategy = numerator.StrategyCached
)
