package types

import (
	"encoding/binary"

	"github.com/xrplf/xrpl-wasm-go/host"
)

const OpaqueFloatSize = 8

// OpaqueFloat is the host's 8-byte issued-currency float. Its bit layout
// belongs to the host: guest code must never decompose or manipulate it
// directly, only route it through the float host calls.
type OpaqueFloat [OpaqueFloatSize]byte

func (*OpaqueFloat) FieldCapacity() int { return OpaqueFloatSize }
func (*OpaqueFloat) WireSize() int      { return OpaqueFloatSize }

func (f *OpaqueFloat) ReadField(buf []byte, n int) error {
	if n != OpaqueFloatSize {
		return host.ErrInternal
	}
	copy(f[:], buf)
	return nil
}

const NumberSize = 12

// Number is the 12-byte serialized STNumber: a big-endian i64 mantissa
// followed by a big-endian i32 exponent, representing mantissa*10^exponent.
type Number struct {
	Mantissa int64
	Exponent int32
}

func (*Number) FieldCapacity() int { return NumberSize }
func (*Number) WireSize() int      { return NumberSize }

func (v *Number) ReadField(buf []byte, n int) error {
	if n != NumberSize {
		return host.ErrInternal
	}
	v.Mantissa = int64(binary.BigEndian.Uint64(buf[0:8]))
	v.Exponent = int32(binary.BigEndian.Uint32(buf[8:12]))
	return nil
}

func (*Number) STI() byte { return STINumber }

func (v *Number) ReadData(buf []byte, n int) error { return v.ReadField(buf, n) }

func (v *Number) AppendData(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint64(dst, uint64(v.Mantissa))
	return binary.BigEndian.AppendUint32(dst, uint32(v.Exponent))
}

// Bytes returns the 12-byte serialized form.
func (v Number) Bytes() [NumberSize]byte {
	var out [NumberSize]byte
	binary.BigEndian.PutUint64(out[0:8], uint64(v.Mantissa))
	binary.BigEndian.PutUint32(out[8:12], uint32(v.Exponent))
	return out
}
