package treeval

import "fmt"

// Kind identifies the runtime variant of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindDouble
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable semi-structured tree value. Construct values
// with the constructor functions below and treat them as read-only
// afterwards; none of the operations in this package mutate their
// inputs.
type Value struct {
	kind Kind

	// Scalar payloads (only one valid based on kind)
	boolVal bool
	intVal  int64
	uintVal uint64
	dblVal  float64
	strVal  string

	// Container payloads
	arrVal []*Value
	objVal []Member
}

// Member is a single object member. Member names are unique within one
// object; insertion order is preserved but carries no meaning for
// hashing or comparison.
type Member struct {
	Name  string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates a signed integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Uint creates an unsigned integer value.
func Uint(v uint64) *Value {
	return &Value{kind: KindUint, uintVal: v}
}

// Double creates a double value.
func Double(v float64) *Value {
	return &Value{kind: KindDouble, dblVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array creates an array value. Element order is significant.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: elems}
}

// Object creates an object value from members. Callers are responsible
// for keeping member names unique within the object.
func Object(members ...Member) *Value {
	return &Value{kind: KindObject, objVal: members}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value's runtime variant. A nil *Value reads as null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// IsNumeric returns true for int, uint, and double values.
func (v *Value) IsNumeric() bool {
	switch v.Kind() {
	case KindInt, KindUint, KindDouble:
		return true
	}
	return false
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != KindBool {
		return false, fmt.Errorf("%w: expected bool, got %s", ErrTypeMismatch, v.Kind())
	}
	return v.boolVal, nil
}

// AsInt returns the signed integer payload.
func (v *Value) AsInt() (int64, error) {
	if v.Kind() != KindInt {
		return 0, fmt.Errorf("%w: expected int, got %s", ErrTypeMismatch, v.Kind())
	}
	return v.intVal, nil
}

// AsUint returns the unsigned integer payload.
func (v *Value) AsUint() (uint64, error) {
	if v.Kind() != KindUint {
		return 0, fmt.Errorf("%w: expected uint, got %s", ErrTypeMismatch, v.Kind())
	}
	return v.uintVal, nil
}

// AsDouble returns the double payload.
func (v *Value) AsDouble() (float64, error) {
	if v.Kind() != KindDouble {
		return 0, fmt.Errorf("%w: expected double, got %s", ErrTypeMismatch, v.Kind())
	}
	return v.dblVal, nil
}

// AsString returns the string payload.
func (v *Value) AsString() (string, error) {
	if v.Kind() != KindString {
		return "", fmt.Errorf("%w: expected string, got %s", ErrTypeMismatch, v.Kind())
	}
	return v.strVal, nil
}

// NumberValue returns the value as a float64 for cross-kind numeric
// comparison. Non-numeric values read as 0; check IsNumeric first.
func (v *Value) NumberValue() float64 {
	switch v.Kind() {
	case KindInt:
		return float64(v.intVal)
	case KindUint:
		return float64(v.uintVal)
	case KindDouble:
		return v.dblVal
	}
	return 0
}

// Len returns the element count for arrays and the member count for
// objects; 0 for everything else.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	}
	return 0
}

// Index returns the i-th array element, or nil if v is not an array or
// i is out of range.
func (v *Value) Index(i int) *Value {
	if v.Kind() != KindArray || i < 0 || i >= len(v.arrVal) {
		return nil
	}
	return v.arrVal[i]
}

// Elements returns the array elements in order; nil for non-arrays.
// The returned slice is shared with the value and must not be modified.
func (v *Value) Elements() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.arrVal
}

// Members returns the object members in insertion order; nil for
// non-objects. The returned slice is shared with the value and must not
// be modified.
func (v *Value) Members() []Member {
	if v.Kind() != KindObject {
		return nil
	}
	return v.objVal
}

// MemberNames returns the object member names in insertion order.
func (v *Value) MemberNames() []string {
	if v.Kind() != KindObject {
		return nil
	}
	names := make([]string, len(v.objVal))
	for i, m := range v.objVal {
		names[i] = m.Name
	}
	return names
}

// Field looks up an object member by name.
func (v *Value) Field(name string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	for _, m := range v.objVal {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}
