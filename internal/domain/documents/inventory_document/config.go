package inventory_document

import "loomline/internal/core/numerator"

const (
	// CodePrefix is the numerator prefix for inventory documents.
	CodePrefix = "ID"

	// NumeratorStrategy: inventory documents feed the movement ledger,
	// codes must stay sequential without gaps.
	NumeratorStrategy = numerator.StrategyStrict
)
