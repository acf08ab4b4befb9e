// Package fieldread holds the buffer-and-validate flow shared by every
// typed field accessor: allocate the type's capacity, run one host call,
// map negative return codes, check the returned byte count against the
// type's wire size, then decode.
package fieldread

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// HostCall runs one host getter against buf and returns its raw code.
type HostCall func(buf []byte) int32

// Read retrieves a required field.
func Read[T any, PT types.Codec[T]](call HostCall) (T, error) {
	var v T
	p := PT(&v)
	buf := make([]byte, p.FieldCapacity())

	rc := call(buf)
	if rc < 0 {
		return v, host.FromCode(rc)
	}
	n := int(rc)
	if w := p.WireSize(); w >= 0 && n != w {
		return v, host.ErrInternal
	}
	if err := p.ReadField(buf, n); err != nil {
		return v, err
	}
	return v, nil
}

// ReadOptional retrieves a field that may be absent. A missing field
// yields the zero value and false with no error.
func ReadOptional[T any, PT types.Codec[T]](call HostCall) (T, bool, error) {
	var v T
	p := PT(&v)
	buf := make([]byte, p.FieldCapacity())

	rc := call(buf)
	if rc == host.ErrFieldNotFound.Code() {
		return v, false, nil
	}
	if rc < 0 {
		return v, false, host.FromCode(rc)
	}
	n := int(rc)
	if w := p.WireSize(); w >= 0 && n != w {
		return v, false, host.ErrInternal
	}
	if err := p.ReadField(buf, n); err != nil {
		return v, false, err
	}
	return v, true, nil
}

// Len maps an array-length host code to a count.
func Len(rc int32) (int, error) {
	if rc < 0 {
		return 0, host.FromCode(rc)
	}
	return int(rc), nil
}
