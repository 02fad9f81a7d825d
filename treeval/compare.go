package treeval

import "fmt"

// ============================================================
// Min/Max Comparison
// ============================================================
//
// Pairwise and fold min/max over scalar values. Both operands must be
// of the same comparable family: numeric values compare by numeric
// value, strings compare byte-wise. The winning input value is returned
// unchanged; no coercion or copying happens.

// Min returns the smaller of two values of a common comparable family.
func Min(v1, v2 *Value) (*Value, error) {
	switch {
	case v1.IsNumeric() && v2.IsNumeric():
		if v1.NumberValue() < v2.NumberValue() {
			return v1, nil
		}
		return v2, nil

	case v1.Kind() == KindString && v2.Kind() == KindString:
		if v1.strVal < v2.strVal {
			return v1, nil
		}
		return v2, nil

	default:
		return nil, fmt.Errorf("%w: cannot compare %s to %s",
			ErrIncomparableTypes, v1.Compact(), v2.Compact())
	}
}

// Max returns the larger of two values of a common comparable family.
func Max(v1, v2 *Value) (*Value, error) {
	switch {
	case v1.IsNumeric() && v2.IsNumeric():
		if v1.NumberValue() < v2.NumberValue() {
			return v2, nil
		}
		return v1, nil

	case v1.Kind() == KindString && v2.Kind() == KindString:
		if v1.strVal < v2.strVal {
			return v2, nil
		}
		return v1, nil

	default:
		return nil, fmt.Errorf("%w: cannot compare %s to %s",
			ErrIncomparableTypes, v1.Compact(), v2.Compact())
	}
}

// MinOf left-folds Min across the values. An empty input yields the
// null sentinel, not an error; a single value is returned unchanged.
func MinOf(vs []*Value) (*Value, error) {
	if len(vs) == 0 {
		return Null(), nil
	}
	result := vs[0]
	for _, v := range vs[1:] {
		r, err := Min(result, v)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// MaxOf left-folds Max across the values. An empty input yields the
// null sentinel, not an error; a single value is returned unchanged.
func MaxOf(vs []*Value) (*Value, error) {
	if len(vs) == 0 {
		return Null(), nil
	}
	result := vs[0]
	for _, v := range vs[1:] {
		r, err := Max(result, v)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}
