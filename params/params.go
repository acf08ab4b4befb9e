// Package params extracts contract parameters: instance parameters fixed
// at deploy time and function parameters supplied by the invoking
// transaction.
//
// A parameter is requested by position together with the serialized type
// it is expected to carry; the host rejects a type mismatch with
// ErrInvalidParams. Values arrive in canonical serialized form, so
// scalars decode big-endian.
package params

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

type hostParam func(index, stTypeID int32, out []byte) int32

func get[T any, PT types.DataPtr[T]](call hostParam, index int) (T, error) {
	var v T
	p := PT(&v)
	buf := make([]byte, p.FieldCapacity())
	rc := call(int32(index), int32(p.STI()), buf)
	if rc < 0 {
		return v, host.FromCode(rc)
	}
	n := int(rc)
	if w := p.WireSize(); w >= 0 && n != w {
		return v, host.ErrInternal
	}
	if err := p.ReadData(buf, n); err != nil {
		return v, err
	}
	return v, nil
}

// Instance returns the instance parameter at index.
func Instance[T any, PT types.DataPtr[T]](index int) (T, error) {
	return get[T, PT](host.InstanceParam, index)
}

// Function returns the function parameter at index for the current
// invocation.
func Function[T any, PT types.DataPtr[T]](index int) (T, error) {
	return get[T, PT](host.FunctionParam, index)
}
