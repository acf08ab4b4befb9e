// Package float performs arithmetic on the opaque 8-byte IOU number
// representation. All computation happens in the host; the guest never
// inspects the bytes it carries around.
//
// Every operation takes a rounding mode from the host package
// (host.RoundToNearest and friends) and passes it through unmodified.
package float

import (
	"encoding/binary"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func result(rc int32, buf []byte) (types.OpaqueFloat, error) {
	var f types.OpaqueFloat
	if err := host.CheckResultBytes(rc, len(f)); err != nil {
		return f, err
	}
	copy(f[:], buf)
	return f, nil
}

// FromInt64 converts a signed integer to the opaque representation.
func FromInt64(value int64, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatFromInt(value, buf, rounding), buf)
}

// FromUint64 converts an unsigned integer to the opaque representation.
// The host consumes the value as 8 big-endian bytes.
func FromUint64(value uint64, rounding int32) (types.OpaqueFloat, error) {
	in := binary.BigEndian.AppendUint64(nil, value)
	buf := make([]byte, 8)
	return result(host.FloatFromUint(in, buf, rounding), buf)
}

// Set builds the number mantissa * 10^exponent.
func Set(exponent int32, mantissa int64, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatSet(exponent, mantissa, buf, rounding), buf)
}

// Compare orders a against b: -1 when a < b, 0 when equal, 1 when a > b.
func Compare(a, b types.OpaqueFloat) (int, error) {
	rc := host.FloatCompare(a[:], b[:])
	if rc < 0 {
		return 0, host.FromCode(rc)
	}
	// The host reports 0 equal, 1 greater, 2 less.
	switch rc {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	case 2:
		return -1, nil
	}
	return 0, host.ErrInternal
}

// Add returns a + b.
func Add(a, b types.OpaqueFloat, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatAdd(a[:], b[:], buf, rounding), buf)
}

// Subtract returns a - b.
func Subtract(a, b types.OpaqueFloat, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatSubtract(a[:], b[:], buf, rounding), buf)
}

// Multiply returns a * b.
func Multiply(a, b types.OpaqueFloat, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatMultiply(a[:], b[:], buf, rounding), buf)
}

// Divide returns a / b. Division by zero reports
// host.ErrInvalidFloatComputation.
func Divide(a, b types.OpaqueFloat, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatDivide(a[:], b[:], buf, rounding), buf)
}

// Pow returns f raised to the integer power n.
func Pow(f types.OpaqueFloat, n int32, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatPow(f[:], n, buf, rounding), buf)
}

// Root returns the nth root of f.
func Root(f types.OpaqueFloat, n int32, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatRoot(f[:], n, buf, rounding), buf)
}

// Log returns the base-10 logarithm of f.
func Log(f types.OpaqueFloat, rounding int32) (types.OpaqueFloat, error) {
	buf := make([]byte, 8)
	return result(host.FloatLog(f[:], buf, rounding), buf)
}
