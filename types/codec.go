package types

// FieldCodec is implemented by the pointer receiver of every type that can be
// decoded from a raw host field buffer.
type FieldCodec interface {
	// FieldCapacity returns the number of buffer bytes to offer the host
	// when reading a field of this type.
	FieldCapacity() int

	// WireSize returns the exact byte count the host must report for this
	// type, or -1 when the width is variable.
	WireSize() int

	// ReadField initializes the receiver from the first n bytes of buf.
	// n is the byte count reported by the host; bytes past n are garbage
	// and must not be interpreted.
	ReadField(buf []byte, n int) error
}

// Codec constrains *T to FieldCodec so generic accessors can declare a T
// locally and fill it in place.
type Codec[T any] interface {
	*T
	FieldCodec
}

// DataCodec extends FieldCodec for types that round-trip through the
// contract data store, which tags every stored value with its STI type code.
type DataCodec interface {
	FieldCodec

	// STI returns the serialized type code stored ahead of the value bytes.
	STI() byte

	// ReadData decodes the stored wire bytes. Unlike ReadField, scalar
	// values arrive big-endian.
	ReadData(buf []byte, n int) error

	// AppendData appends the value's wire bytes (without the STI tag) to dst.
	AppendData(dst []byte) []byte
}

// DataPtr is the pointer-constraint counterpart of DataCodec.
type DataPtr[T any] interface {
	*T
	DataCodec
}

// Serialized type codes from the protocol's field registry. These tag values
// in the contract data store and in event TLV entries.
const (
	STIUInt16    byte = 1
	STIUInt32    byte = 2
	STIUInt64    byte = 3
	STIUInt128   byte = 4
	STIUInt256   byte = 5
	STIAmount    byte = 6
	STIVL        byte = 7
	STIAccount   byte = 8
	STINumber    byte = 9
	STIObject    byte = 14
	STIArray     byte = 15
	STIUInt8     byte = 16
	STIUInt160   byte = 17
	STIPathSet   byte = 18
	STIVector256 byte = 19
	STIUInt96    byte = 20
	STIUInt192   byte = 21
	STIUInt384   byte = 22
	STIUInt512   byte = 23
	STIIssue     byte = 24
	STICurrency  byte = 26
)
