// Package ledgerobj reads typed fields out of ledger objects, either the
// object in execution context or one cached into a slot by keylet.
//
// The field constant picks the result type:
//
//	seq, err := ledgerobj.GetField(slot, sfield.Sequence)        // types.UInt32
//	bal, err := ledgerobj.GetField(slot, sfield.Balance)         // types.TokenAmount
//	hash, ok, err := ledgerobj.GetFieldOptional(slot, sfield.EmailHash)
//
// Nested fields and array elements are reached through a packed
// locator instead of a flat field code.
package ledgerobj

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/internal/fieldread"
	"github.com/xrplf/xrpl-wasm-go/locator"
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// Cache loads the ledger object addressed by keylet into the given slot.
// Passing slot 0 lets the host pick a free slot. Returns the slot number
// actually used.
func Cache(keylet types.Hash256, slot int32) (int32, error) {
	rc := host.CacheLedgerObj(keylet[:], slot)
	if rc < 0 {
		return 0, host.FromCode(rc)
	}
	return rc, nil
}

// GetCurrentField reads a required field from the current ledger object.
func GetCurrentField[T any, PT types.Codec[T]](f sfield.Field[T]) (T, error) {
	return fieldread.Read[T, PT](func(buf []byte) int32 {
		return host.GetCurrentLedgerObjField(f.Code(), buf)
	})
}

// GetCurrentFieldOptional reads a field from the current ledger object,
// reporting absence instead of failing.
func GetCurrentFieldOptional[T any, PT types.Codec[T]](f sfield.Field[T]) (T, bool, error) {
	return fieldread.ReadOptional[T, PT](func(buf []byte) int32 {
		return host.GetCurrentLedgerObjField(f.Code(), buf)
	})
}

// GetField reads a required field from the ledger object cached in slot.
func GetField[T any, PT types.Codec[T]](slot int32, f sfield.Field[T]) (T, error) {
	return fieldread.Read[T, PT](func(buf []byte) int32 {
		return host.GetLedgerObjField(slot, f.Code(), buf)
	})
}

// GetFieldOptional reads a field from the ledger object cached in slot,
// reporting absence instead of failing.
func GetFieldOptional[T any, PT types.Codec[T]](slot int32, f sfield.Field[T]) (T, bool, error) {
	return fieldread.ReadOptional[T, PT](func(buf []byte) int32 {
		return host.GetLedgerObjField(slot, f.Code(), buf)
	})
}

// GetCurrentNestedField reads a required nested field from the current
// ledger object.
func GetCurrentNestedField[T any, PT types.Codec[T]](loc *locator.Locator) (T, error) {
	return fieldread.Read[T, PT](func(buf []byte) int32 {
		return host.GetCurrentLedgerObjNestedField(loc.Bytes(), buf)
	})
}

// GetCurrentNestedFieldOptional reads a nested field from the current
// ledger object, reporting absence instead of failing.
func GetCurrentNestedFieldOptional[T any, PT types.Codec[T]](loc *locator.Locator) (T, bool, error) {
	return fieldread.ReadOptional[T, PT](func(buf []byte) int32 {
		return host.GetCurrentLedgerObjNestedField(loc.Bytes(), buf)
	})
}

// GetNestedField reads a required nested field from the ledger object
// cached in slot.
func GetNestedField[T any, PT types.Codec[T]](slot int32, loc *locator.Locator) (T, error) {
	return fieldread.Read[T, PT](func(buf []byte) int32 {
		return host.GetLedgerObjNestedField(slot, loc.Bytes(), buf)
	})
}

// GetNestedFieldOptional reads a nested field from the ledger object
// cached in slot, reporting absence instead of failing.
func GetNestedFieldOptional[T any, PT types.Codec[T]](slot int32, loc *locator.Locator) (T, bool, error) {
	return fieldread.ReadOptional[T, PT](func(buf []byte) int32 {
		return host.GetLedgerObjNestedField(slot, loc.Bytes(), buf)
	})
}

// CurrentArrayLen returns the element count of an array field on the
// current ledger object.
func CurrentArrayLen(field int32) (int, error) {
	return fieldread.Len(host.GetCurrentLedgerObjArrayLen(field))
}

// ArrayLen returns the element count of an array field on the ledger
// object cached in slot.
func ArrayLen(slot int32, field int32) (int, error) {
	return fieldread.Len(host.GetLedgerObjArrayLen(slot, field))
}

// CurrentNestedArrayLen returns the element count of the array addressed
// by loc on the current ledger object.
func CurrentNestedArrayLen(loc *locator.Locator) (int, error) {
	return fieldread.Len(host.GetCurrentLedgerObjNestedArrayLen(loc.Bytes()))
}

// NestedArrayLen returns the element count of the array addressed by loc
// on the ledger object cached in slot.
func NestedArrayLen(slot int32, loc *locator.Locator) (int, error) {
	return fieldread.Len(host.GetLedgerObjNestedArrayLen(slot, loc.Bytes()))
}
