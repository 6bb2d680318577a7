package types

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the type of a partition column value.
type Kind uint8

// Supported value kinds. The numeric values participate in the canonical
// key encoding and must never be reordered.
const (
	KindNull Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindFloat64
	KindString
	KindBytes
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an immutable, typed partition column value.
//
// Values are constructed through the *Value helper functions and compared
// by content. Constructors that accept reference types (BytesValue) copy
// their input, so callers are free to reuse and mutate the original buffer
// after constructing a Value.
type Value struct {
	kind Kind
	num  uint64
	str  string
}

// NullValue returns the SQL NULL value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// BoolValue returns a boolean value.
func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}

	return Value{kind: KindBool, num: n}
}

// Int32Value returns a 32-bit integer value.
func Int32Value(v int32) Value {
	return Value{kind: KindInt32, num: uint64(uint32(v))}
}

// Int64Value returns a 64-bit integer value.
func Int64Value(v int64) Value {
	return Value{kind: KindInt64, num: uint64(v)}
}

// Float64Value returns a 64-bit floating point value.
func Float64Value(v float64) Value {
	return Value{kind: KindFloat64, num: math.Float64bits(v)}
}

// StringValue returns a string value.
func StringValue(v string) Value {
	return Value{kind: KindString, str: v}
}

// BytesValue returns a byte-slice value. The input is copied, so the caller
// may reuse the buffer after this call.
func BytesValue(v []byte) Value {
	return Value{kind: KindBytes, str: string(v)}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool {
	return v.num != 0
}

// Int32 returns the 32-bit integer payload. Valid only for KindInt32.
func (v Value) Int32() int32 {
	return int32(uint32(v.num))
}

// Int64 returns the 64-bit integer payload. Valid only for KindInt64.
func (v Value) Int64() int64 {
	return int64(v.num)
}

// Float64 returns the floating point payload. Valid only for KindFloat64.
func (v Value) Float64() float64 {
	return math.Float64frombits(v.num)
}

// Text returns the string payload. Valid only for KindString.
func (v Value) Text() string {
	return v.str
}

// Bytes returns a copy of the byte payload. Valid only for KindBytes.
func (v Value) Bytes() []byte {
	return []byte(v.str)
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBytes:
		return fmt.Sprintf("0x%x", v.str)
	default:
		return "invalid"
	}
}

// appendCanonical appends the unambiguous binary encoding of the value:
// a one-byte kind tag followed by a fixed-width payload for scalars, or a
// uvarint length prefix plus raw bytes for strings and byte slices. The
// length prefix guarantees that field boundaries never blur, so the tuples
// ("ab","c") and ("a","bc") encode differently.
func (v Value) appendCanonical(dst []byte) []byte {
	dst = append(dst, byte(v.kind))

	switch v.kind {
	case KindNull:
		// tag only
	case KindBool:
		dst = append(dst, byte(v.num))
	case KindInt32:
		dst = binary.BigEndian.AppendUint32(dst, uint32(v.num))
	case KindInt64, KindFloat64:
		dst = binary.BigEndian.AppendUint64(dst, v.num)
	case KindString, KindBytes:
		dst = binary.AppendUvarint(dst, uint64(len(v.str)))
		dst = append(dst, v.str...)
	}

	return dst
}
