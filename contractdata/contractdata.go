// Package contractdata reads and writes the per-account key/value store
// exposed to contracts.
//
// Stored values are tagged: a write serializes [typeCode][big-endian
// value bytes], and a read hands back just the value bytes. Reads
// report presence with a bool; any host failure or size mismatch reads
// as absent.
package contractdata

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func decode[T any, PT types.DataPtr[T]](buf []byte, rc int32) (T, bool) {
	var v T
	p := PT(&v)
	if rc < 0 {
		return v, false
	}
	n := int(rc)
	if w := p.WireSize(); w >= 0 && n != w {
		return v, false
	}
	if err := p.ReadData(buf, n); err != nil {
		return v, false
	}
	return v, true
}

// Get reads the value stored under key on account.
func Get[T any, PT types.DataPtr[T]](account types.AccountID, key []byte) (T, bool) {
	var v T
	buf := make([]byte, PT(&v).FieldCapacity())
	rc := host.GetDataObjectField(account[:], key, buf)
	return decode[T, PT](buf, rc)
}

// GetNested reads key inside the nested object stored under nested.
func GetNested[T any, PT types.DataPtr[T]](account types.AccountID, nested, key []byte) (T, bool) {
	var v T
	buf := make([]byte, PT(&v).FieldCapacity())
	rc := host.GetDataNestedObjectField(account[:], nested, key, buf)
	return decode[T, PT](buf, rc)
}

// GetArrayElement reads element index of the array stored under key.
func GetArrayElement[T any, PT types.DataPtr[T]](account types.AccountID, key []byte, index int) (T, bool) {
	var v T
	buf := make([]byte, PT(&v).FieldCapacity())
	rc := host.GetDataArrayElementField(account[:], key, int32(index), buf)
	return decode[T, PT](buf, rc)
}

// GetNestedArrayElement reads fieldKey inside element index of the array
// stored under key.
func GetNestedArrayElement[T any, PT types.DataPtr[T]](account types.AccountID, key []byte, index int, fieldKey []byte) (T, bool) {
	var v T
	buf := make([]byte, PT(&v).FieldCapacity())
	rc := host.GetDataNestedArrayElementField(account[:], key, int32(index), fieldKey, buf)
	return decode[T, PT](buf, rc)
}

func encode[T any, PT types.DataPtr[T]](value T) []byte {
	p := PT(&value)
	return p.AppendData([]byte{p.STI()})
}

// Set stores value under key on account.
func Set[T any, PT types.DataPtr[T]](account types.AccountID, key []byte, value T) error {
	return host.CheckResult(host.SetDataObjectField(account[:], key, encode[T, PT](value)))
}

// SetNested stores value under key inside the nested object at nested.
func SetNested[T any, PT types.DataPtr[T]](account types.AccountID, nested, key []byte, value T) error {
	return host.CheckResult(host.SetDataNestedObjectField(account[:], nested, key, encode[T, PT](value)))
}

// SetArrayElement stores value as element index of the array under key.
func SetArrayElement[T any, PT types.DataPtr[T]](account types.AccountID, key []byte, index int, value T) error {
	return host.CheckResult(host.SetDataArrayElementField(account[:], key, int32(index), encode[T, PT](value)))
}

// SetNestedArrayElement stores value under fieldKey inside element index
// of the array under key.
func SetNestedArrayElement[T any, PT types.DataPtr[T]](account types.AccountID, key []byte, index int, fieldKey []byte, value T) error {
	return host.CheckResult(host.SetDataNestedArrayElementField(account[:], key, int32(index), fieldKey, encode[T, PT](value)))
}
