package treeval

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON text and Value. Parsing goes through sonic into
// a generic interface{} tree and is then walked into the tagged
// representation. Integral doubles inside the float64-safe range become
// KindInt, matching what a JSON reader that distinguishes integers
// would have produced.

// jsonMaxSafeInt bounds the integers that survive a float64 round trip.
const jsonMaxSafeInt = 1<<53 - 1

// FromJSON parses JSON text into a Value.
//
// Object members are ordered by sorted name so that parsing the same
// document twice yields byte-identical re-encodings; member order is
// not semantically meaningful, so nothing is lost.
func FromJSON(data []byte) (*Value, error) {
	var raw interface{}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("treeval: JSON parse error: %w", err)
	}
	return fromJSONValue(raw)
}

// FromJSONValue converts a generic value (as produced by a JSON
// unmarshal into interface{}) to a Value.
func FromJSONValue(raw interface{}) (*Value, error) {
	return fromJSONValue(raw)
}

func fromJSONValue(raw interface{}) (*Value, error) {
	if raw == nil {
		return Null(), nil
	}

	switch val := raw.(type) {
	case bool:
		return Bool(val), nil

	case float64:
		if math.IsNaN(val) {
			return nil, fmt.Errorf("treeval: NaN is not representable in JSON")
		}
		if math.IsInf(val, 0) {
			return nil, fmt.Errorf("treeval: Infinity is not representable in JSON")
		}
		if val == math.Trunc(val) && val >= -jsonMaxSafeInt && val <= jsonMaxSafeInt {
			return Int(int64(val)), nil
		}
		return Double(val), nil

	case int64:
		return Int(val), nil

	case string:
		return Str(val), nil

	case []interface{}:
		elems := make([]*Value, 0, len(val))
		for i, e := range val {
			v, err := fromJSONValue(e)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			elems = append(elems, v)
		}
		return Array(elems...), nil

	case map[string]interface{}:
		names := make([]string, 0, len(val))
		for k := range val {
			names = append(names, k)
		}
		sort.Strings(names)

		members := make([]Member, 0, len(names))
		for _, k := range names {
			v, err := fromJSONValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			members = append(members, Member{Name: k, Value: v})
		}
		return Object(members...), nil

	default:
		return nil, fmt.Errorf("treeval: unsupported JSON type: %T", raw)
	}
}

// ============================================================
// Compact Encoder
// ============================================================

// Compact returns the default compact single-line JSON encoding of the
// value. Object members are written in insertion order; use the hasher,
// not this text, for order-insensitive identity.
func (v *Value) Compact() string {
	sb := getPooledBuilder()
	defer putPooledBuilder(sb)
	writeCompact(sb, v)
	return sb.String()
}

// MarshalJSON implements json.Marshaler with the compact encoding.
func (v *Value) MarshalJSON() ([]byte, error) {
	return []byte(v.Compact()), nil
}

// ToJSON returns the compact JSON encoding as bytes.
func ToJSON(v *Value) []byte {
	return []byte(v.Compact())
}

func writeCompact(sb *strings.Builder, v *Value) {
	switch v.Kind() {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.boolVal {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.intVal, 10))
	case KindUint:
		sb.WriteString(strconv.FormatUint(v.uintVal, 10))
	case KindDouble:
		sb.WriteString(formatDouble(v.dblVal))
	case KindString:
		sb.WriteString(quoteJSON(v.strVal))
	case KindArray:
		sb.WriteString("[")
		for i, e := range v.arrVal {
			if i != 0 {
				sb.WriteString(",")
			}
			writeCompact(sb, e)
		}
		sb.WriteString("]")
	case KindObject:
		sb.WriteString("{")
		for i, m := range v.objVal {
			if i != 0 {
				sb.WriteString(",")
			}
			sb.WriteString(quoteJSON(m.Name))
			sb.WriteString(":")
			writeCompact(sb, m.Value)
		}
		sb.WriteString("}")
	}
}

// quoteJSON returns s as a quoted, escaped JSON string literal.
func quoteJSON(s string) string {
	b, err := sonic.Marshal(s)
	if err != nil {
		// Marshal of a string cannot fail; strconv keeps the output
		// well-formed if it somehow does.
		return strconv.Quote(s)
	}
	return string(b)
}

// formatDouble renders a double in shortest-roundtrip form. NaN and
// Infinity are not valid JSON; they only appear in diagnostics for
// directly constructed values.
func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
