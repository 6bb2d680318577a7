package types

import (
	"strings"

	"github.com/zeebo/xxh3"
)

// PartitionKey is an immutable, ordered tuple of typed partition column
// values.
//
// Two keys with equal contents are the same key regardless of how they were
// constructed: equality, ordering and hashing are all structural, derived
// from the canonical binary encoding of the field tuple. Construction copies
// every field (see BytesValue), so a PartitionKey never aliases a
// caller-owned buffer and is safe to retain indefinitely, e.g. as a map key
// inside an Assigner.
type PartitionKey struct {
	values    []Value
	canonical string
}

// NewPartitionKey builds a key from the given column values in order.
//
// Parameters:
//   - values: Partition column values, outermost column first
//
// Returns:
//   - PartitionKey: Immutable key owning copies of all field data
//
// Example:
//
//	key := types.NewPartitionKey(types.StringValue("us-east"), types.Int32Value(20260825))
func NewPartitionKey(values ...Value) PartitionKey {
	owned := make([]Value, len(values))
	copy(owned, values)

	var buf []byte
	for _, v := range owned {
		buf = v.appendCanonical(buf)
	}

	return PartitionKey{values: owned, canonical: string(buf)}
}

// Len returns the number of columns in the key.
func (k PartitionKey) Len() int {
	return len(k.values)
}

// Value returns the i-th column value.
func (k PartitionKey) Value(i int) Value {
	return k.values[i]
}

// Values returns a copy of the column values.
func (k PartitionKey) Values() []Value {
	return append([]Value(nil), k.values...)
}

// Canonical returns the canonical binary encoding of the key as a string.
//
// The encoding is unique per distinct tuple and is suitable as a Go map key.
// An empty key (zero columns) encodes to "".
func (k PartitionKey) Canonical() string {
	return k.canonical
}

// Equal reports whether both keys hold identical column tuples.
func (k PartitionKey) Equal(o PartitionKey) bool {
	return k.canonical == o.canonical
}

// Compare performs a total-order comparison of two keys by their canonical
// encodings. The order is stable and consistent with Equal, suitable for
// sorting key sets deterministically.
//
// Returns:
//   - int: -1 if k < o, 0 if equal, +1 if k > o
func (k PartitionKey) Compare(o PartitionKey) int {
	return strings.Compare(k.canonical, o.canonical)
}

// HashID computes a 64-bit structural hash of the key using XXH3.
//
// Returns:
//   - uint64: Hash of the canonical encoding; equal keys hash equally
func (k PartitionKey) HashID() uint64 {
	return xxh3.HashString(k.canonical)
}

// HashIDSeed computes a seeded 64-bit structural hash of the key.
//
// A seed of 0 is equivalent to HashID.
func (k PartitionKey) HashIDSeed(seed uint64) uint64 {
	if seed == 0 {
		return xxh3.HashString(k.canonical)
	}

	return xxh3.HashStringSeed(k.canonical, seed)
}

// Hash32 folds the 64-bit structural hash into 32 bits.
//
// This is the hash fed to Assigner.Assign when the record's bucket key is
// itself a tuple of column values.
func (k PartitionKey) Hash32() uint32 {
	h := k.HashID()

	return uint32(h ^ h>>32)
}

// String renders the key for logs, e.g. `("us-east", 20260825)`.
func (k PartitionKey) String() string {
	if len(k.values) == 0 {
		return "()"
	}

	var b strings.Builder
	b.WriteByte('(')
	for i, v := range k.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(')')

	return b.String()
}
