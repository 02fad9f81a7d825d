package treeval

import "fmt"

// Flatten flattens exactly two nesting levels: every argument must be
// an array of arrays, and the leaves of those inner arrays are appended
// to one output array in outer-argument, inner-array, leaf order. This
// is intentionally not a recursive flatten; leaves that are themselves
// arrays are appended as-is.
//
// When no leaf is appended at all the result is null rather than an
// empty array, preserving the historical behavior callers key on.
func Flatten(args []*Value) (*Value, error) {
	var out []*Value

	for i, arg := range args {
		if arg.Kind() != KindArray {
			return nil, fmt.Errorf("%w: flatten argument %d is %s, not array",
				ErrInvalidValueType, i, arg.Kind())
		}
		for j, inner := range arg.arrVal {
			if inner.Kind() != KindArray {
				return nil, fmt.Errorf("%w: flatten argument %d element %d is %s, not array",
					ErrInvalidValueType, i, j, inner.Kind())
			}
			out = append(out, inner.arrVal...)
		}
	}

	if out == nil {
		return Null(), nil
	}
	return Array(out...), nil
}
