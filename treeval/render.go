package treeval

import (
	"sort"
	"strings"
	"sync"
)

// ============================================================
// Abbreviated Rendering
// ============================================================
//
// RenderAbbreviated produces a human-readable single-line preview of a
// value with its cost bounded by two budgets:
//
//   - maxLengthPerItem caps individual strings and accumulated array
//     output; a truncated string ends in "..." and a truncated array in
//     ",...]".
//   - maxLength is the budget handed down for nested string members.
//
// Both budgets are best-effort, not hard guarantees: object member
// names and deeply nested small containers are not capped in
// aggregate. Negative budgets disable the corresponding truncation.
// Object members render in sorted name order so output is stable.

// stringBuilderPool provides reusable builders for the renderers.
var stringBuilderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

// getPooledBuilder gets a builder from the pool and resets it.
func getPooledBuilder() *strings.Builder {
	b := stringBuilderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

// putPooledBuilder returns a builder to the pool.
func putPooledBuilder(b *strings.Builder) {
	// Only return reasonably sized builders to the pool
	if b.Cap() < 64*1024 {
		stringBuilderPool.Put(b)
	}
}

// RenderAbbreviated renders a value as bounded single-line text.
// Strings are truncated against maxLengthPerItem, arrays stop once
// their accumulated output reaches maxLengthPerItem, objects recurse
// with both budgets, and other scalars render in their compact form
// untruncated.
func RenderAbbreviated(v *Value, maxLengthPerItem, maxLength int) string {
	switch v.Kind() {
	case KindObject:
		return renderAbbreviatedObject(v, maxLengthPerItem, maxLength)
	case KindArray:
		return renderAbbreviatedArray(v, maxLengthPerItem, maxLength)
	case KindString:
		// The per-item budget is the string budget, also for the
		// top-level string case.
		return renderAbbreviatedString(v.strVal, maxLengthPerItem)
	default:
		return v.Compact()
	}
}

// renderAbbreviatedString renders a quoted string, truncated to
// maxLength characters of raw content plus an ellipsis marker when the
// quoted form does not fit. A negative maxLength disables truncation.
func renderAbbreviatedString(s string, maxLength int) string {
	quoted := quoteJSON(s)
	if maxLength < 0 {
		return quoted
	}
	if len(quoted) < maxLength {
		return quoted
	}

	// Truncate by runes so the marker never follows a torn character.
	runes := []rune(s)
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	return quoteJSON(string(runes)) + "..."
}

func renderAbbreviatedObject(v *Value, maxLengthPerItem, maxLength int) string {
	names := v.MemberNames()
	sort.Strings(names)

	sb := getPooledBuilder()
	defer putPooledBuilder(sb)

	sb.WriteString("{")
	for i, name := range names {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteJSON(name))
		sb.WriteString(": ")

		child, _ := v.Field(name)
		sb.WriteString(RenderAbbreviated(child, maxLengthPerItem, maxLength))
	}
	sb.WriteString(" }")

	return sb.String()
}

func renderAbbreviatedArray(v *Value, maxLengthPerItem, maxLength int) string {
	sb := getPooledBuilder()
	defer putPooledBuilder(sb)

	sb.WriteString("[")

	n := v.Len()
	i := 0
	for ; i < n && (maxLengthPerItem < 0 || sb.Len() < maxLengthPerItem); i++ {
		if i != 0 {
			sb.WriteString(",")
		}
		sb.WriteString(RenderAbbreviated(v.arrVal[i], maxLengthPerItem, maxLength))
	}

	if i < n {
		sb.WriteString(",...")
	}
	sb.WriteString("]")

	return sb.String()
}
