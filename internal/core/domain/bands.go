package domain

import "fmt"

// Band maps a lower bound to a value. Ordered slices of bands express
// the threshold tables used by both the quality scorer (dimension
// breakpoints, tier mapping) and the prompt assembler's token-usage
// classifier, so the near-identical branching lives in one place.
type Band[T any] struct {
	// Min is the inclusive lower bound for this band.
	Min float64

	// Value is returned when the band matches.
	Value T
}

// LookupBand returns the value of the highest band whose Min is <= v.
// Bands must be sorted by ascending Min and the first band must cover
// the minimum possible input (typically Min == 0).
func LookupBand[T any](bands []Band[T], v float64) T {
	var result T
	for _, b := range bands {
		if v >= b.Min {
			result = b.Value
		}
	}
	return result
}

// ValidateBands checks that a band table is non-empty and strictly
// ascending. Invalid tables are configuration errors.
func ValidateBands[T any](bands []Band[T]) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: empty band table", ErrInvalidConfig)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Min <= bands[i-1].Min {
			return fmt.Errorf("%w: band bounds must be strictly ascending (index %d)", ErrInvalidConfig, i)
		}
	}
	return nil
}
