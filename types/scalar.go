package types

import (
	"encoding/binary"

	"github.com/xrplf/xrpl-wasm-go/host"
)

// Fixed-width integer wire types. Host field reads deliver scalars in the
// guest's native little-endian order; contract-data writes serialize
// big-endian behind an STI tag.

type UInt8 uint8

func (*UInt8) FieldCapacity() int { return 1 }
func (*UInt8) WireSize() int      { return 1 }

func (v *UInt8) ReadField(buf []byte, n int) error {
	if n != 1 {
		return host.ErrInternal
	}
	*v = UInt8(buf[0])
	return nil
}

func (*UInt8) STI() byte { return STIUInt8 }

func (v *UInt8) ReadData(buf []byte, n int) error {
	if n != 1 {
		return host.ErrInternal
	}
	*v = UInt8(buf[0])
	return nil
}

func (v *UInt8) AppendData(dst []byte) []byte {
	return append(dst, byte(*v))
}

type UInt16 uint16

func (*UInt16) FieldCapacity() int { return 2 }
func (*UInt16) WireSize() int      { return 2 }

func (v *UInt16) ReadField(buf []byte, n int) error {
	if n != 2 {
		return host.ErrInternal
	}
	*v = UInt16(binary.LittleEndian.Uint16(buf))
	return nil
}

func (*UInt16) STI() byte { return STIUInt16 }

func (v *UInt16) ReadData(buf []byte, n int) error {
	if n != 2 {
		return host.ErrInternal
	}
	*v = UInt16(binary.BigEndian.Uint16(buf))
	return nil
}

func (v *UInt16) AppendData(dst []byte) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(*v))
}

type UInt32 uint32

func (*UInt32) FieldCapacity() int { return 4 }
func (*UInt32) WireSize() int      { return 4 }

func (v *UInt32) ReadField(buf []byte, n int) error {
	if n != 4 {
		return host.ErrInternal
	}
	*v = UInt32(binary.LittleEndian.Uint32(buf))
	return nil
}

func (*UInt32) STI() byte { return STIUInt32 }

func (v *UInt32) ReadData(buf []byte, n int) error {
	if n != 4 {
		return host.ErrInternal
	}
	*v = UInt32(binary.BigEndian.Uint32(buf))
	return nil
}

func (v *UInt32) AppendData(dst []byte) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(*v))
}

type UInt64 uint64

func (*UInt64) FieldCapacity() int { return 8 }
func (*UInt64) WireSize() int      { return 8 }

func (v *UInt64) ReadField(buf []byte, n int) error {
	if n != 8 {
		return host.ErrInternal
	}
	*v = UInt64(binary.LittleEndian.Uint64(buf))
	return nil
}

func (*UInt64) STI() byte { return STIUInt64 }

func (v *UInt64) ReadData(buf []byte, n int) error {
	if n != 8 {
		return host.ErrInternal
	}
	*v = UInt64(binary.BigEndian.Uint64(buf))
	return nil
}

func (v *UInt64) AppendData(dst []byte) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(*v))
}
