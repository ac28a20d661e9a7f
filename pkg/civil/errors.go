package civil

import (
	"errors"
	"fmt"
)

// ComponentRange reports that a component passed to a constructor was outside
// its valid range. Every fallible constructor in this package returns a
// *ComponentRange on failure.
type ComponentRange struct {
	// Name of the component that was out of range, e.g. "month" or "day".
	Name string

	// Minimum allowed value, inclusive.
	Minimum int64

	// Maximum allowed value, inclusive.
	Maximum int64

	// Value that was provided.
	Value int64

	// Conditional is true when Minimum and/or Maximum depend on the values
	// of other parameters supplied in the same call (for example, the valid
	// day range depends on the year and month). When set, the bounds are only
	// meaningful for the specific input combination that failed.
	Conditional bool
}

func (e *ComponentRange) Error() string {
	s := fmt.Sprintf("%s must be in the range %d to %d", e.Name, e.Minimum, e.Maximum)
	if e.Conditional {
		s += ", given values of other parameters"
	}
	return s
}

// ErrIndeterminateOffset is returned when the system's local UTC offset
// cannot be determined, either because the platform query failed or because
// querying process-wide timezone state could not be done safely. It carries
// no payload and is disjoint from ComponentRange.
var ErrIndeterminateOffset = errors.New("the system's UTC offset could not be determined")

// rangeError builds the error for a component outside an unconditional range.
func rangeError(name string, value, minimum, maximum int64) *ComponentRange {
	return &ComponentRange{Name: name, Minimum: minimum, Maximum: maximum, Value: value}
}

// conditionalRangeError builds the error for a component whose valid range
// depends on other already-supplied parameters.
func conditionalRangeError(name string, value, minimum, maximum int64) *ComponentRange {
	return &ComponentRange{Name: name, Minimum: minimum, Maximum: maximum, Value: value, Conditional: true}
}
