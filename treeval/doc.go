// Package treeval implements deterministic content hashing and bounded
// diagnostic rendering for semi-structured tree values.
//
// The package is built around an immutable tagged tree value (null, bool,
// int, uint, double, string, array, object) and four operations over it:
//
//   - Canonical hashing: a keyed 64-bit hash that is a pure function of
//     value content and seed. Object members are hashed in sorted name
//     order, so two objects that differ only in member insertion order
//     hash identically; array element order is significant.
//   - Abbreviated rendering: a best-effort size-capped single-line
//     preview of a value, safe to put in log lines for large documents.
//   - Min/max comparison: pairwise and fold forms over scalar values of
//     a common family (numeric or string).
//   - Two-level array flattening.
//
// # Determinism
//
// Hashes are stable across processes and platforms for a fixed seed.
// DefaultSeedStable is established at init and never mutated, so
// unsynchronized concurrent use is safe. The hash of null is the fixed
// sentinel 1 regardless of seed; existing cache keys depend on this.
//
// # Limits
//
// Traversal is recursive; call-stack depth grows with input tree depth.
// Documents from untrusted sources with pathological nesting should be
// depth-checked before being handed to Hash or RenderAbbreviated.
//
// The rendering budgets are best-effort: long object member names and
// deeply nested small containers are not capped in aggregate.
//
// # Example
//
//	v, _ := treeval.FromJSON([]byte(`{"user":"ada","scores":[1,2,3]}`))
//	h, _ := treeval.HashStable(v)
//	preview := treeval.RenderAbbreviated(v, 64, -1)
package treeval
