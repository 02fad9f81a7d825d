package treeval

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/dchest/siphash"
)

// ============================================================
// Canonical Keyed Hashing
// ============================================================
//
// Hash computes a 64-bit keyed content hash of a tree value. The hash
// is a pure function of (value content, seed): object members are
// folded in sorted name order, so member insertion order never affects
// the result, while array element order does. Scalars are hashed over
// their fixed-width raw bit patterns, strings over their raw bytes.
//
// The keyed primitive is SipHash-2-4, treated strictly as an external
// PRF contract: deterministic, seed-sensitive, avalanching.

// HashSeed is the 128-bit key for the hash primitive, as two 64-bit
// words.
type HashSeed struct {
	K0 uint64
	K1 uint64
}

// DefaultSeedStable is the process-wide default seed. It is established
// here and never mutated, so unsynchronized concurrent reads are safe.
// The words are fixed forever: hashes computed with this seed are used
// as persistent cache and deduplication keys.
var DefaultSeedStable = HashSeed{K0: 0x1958DF94340e7cba, K1: 0x8928Fc8B84a0}

// nullHash is the hash of a null value. It is a fixed sentinel,
// deliberately independent of the seed; downstream cache keys rely on
// it, so it must never be derived from the keyed primitive.
const nullHash = 1

// keyedHash applies the keyed primitive to raw bytes.
func keyedHash(p []byte, seed HashSeed) uint64 {
	return siphash.Hash(seed.K0, seed.K1, p)
}

// Hash computes the canonical keyed hash of a value.
//
// Traversal is recursive; stack depth grows with tree depth. Cap the
// depth of untrusted documents before hashing them.
func Hash(v *Value, seed HashSeed) (uint64, error) {
	switch v.Kind() {
	case KindNull:
		return nullHash, nil

	case KindBool:
		var buf [1]byte
		if v.boolVal {
			buf[0] = 1
		}
		return keyedHash(buf[:], seed), nil

	case KindInt:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v.intVal))
		return keyedHash(buf[:], seed), nil

	case KindUint:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v.uintVal)
		return keyedHash(buf[:], seed), nil

	case KindDouble:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.dblVal))
		return keyedHash(buf[:], seed), nil

	case KindString:
		return keyedHash([]byte(v.strVal), seed), nil

	case KindArray:
		return HashArray(v, seed)

	case KindObject:
		return HashObject(v, seed)

	default:
		return 0, fmt.Errorf("%w: unknown kind %d in Hash", ErrInvalidValueType, v.Kind())
	}
}

// HashStable computes the canonical hash with DefaultSeedStable.
func HashStable(v *Value) (uint64, error) {
	return Hash(v, DefaultSeedStable)
}

// HashArray hashes an array value: each element is hashed in order and
// the resulting 64-bit words are concatenated and hashed as one buffer.
// The input must already be an array.
func HashArray(v *Value, seed HashSeed) (uint64, error) {
	if v.Kind() != KindArray {
		return 0, fmt.Errorf("%w: HashArray on %s", ErrTypeMismatch, v.Kind())
	}

	buf := make([]byte, 8*len(v.arrVal))
	for i, elem := range v.arrVal {
		h, err := Hash(elem, seed)
		if err != nil {
			return 0, err
		}
		binary.LittleEndian.PutUint64(buf[i*8:], h)
	}

	return keyedHash(buf, seed), nil
}

// HashObject hashes an object value: member names are sorted byte-wise,
// then for each name the pair (hash of name, hash of member value) is
// appended to one buffer, which is hashed as a whole. The input must
// already be an object.
func HashObject(v *Value, seed HashSeed) (uint64, error) {
	if v.Kind() != KindObject {
		return 0, fmt.Errorf("%w: HashObject on %s", ErrTypeMismatch, v.Kind())
	}

	members := append([]Member(nil), v.objVal...)
	sort.Slice(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})

	buf := make([]byte, 16*len(members))
	for i, m := range members {
		binary.LittleEndian.PutUint64(buf[i*16:], keyedHash([]byte(m.Name), seed))

		h, err := Hash(m.Value, seed)
		if err != nil {
			return 0, err
		}
		binary.LittleEndian.PutUint64(buf[i*16+8:], h)
	}

	return keyedHash(buf, seed), nil
}
