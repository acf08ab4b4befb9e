// Package currenttx reads typed fields out of the transaction being
// executed. It mirrors the ledgerobj accessors but targets the current
// transaction instead of a ledger object.
package currenttx

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/internal/fieldread"
	"github.com/xrplf/xrpl-wasm-go/locator"
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// GetField reads a required field from the current transaction.
func GetField[T any, PT types.Codec[T]](f sfield.Field[T]) (T, error) {
	return fieldread.Read[T, PT](func(buf []byte) int32 {
		return host.GetTxField(f.Code(), buf)
	})
}

// GetFieldOptional reads a field from the current transaction, reporting
// absence instead of failing.
func GetFieldOptional[T any, PT types.Codec[T]](f sfield.Field[T]) (T, bool, error) {
	return fieldread.ReadOptional[T, PT](func(buf []byte) int32 {
		return host.GetTxField(f.Code(), buf)
	})
}

// GetNestedField reads a required nested field from the current
// transaction.
func GetNestedField[T any, PT types.Codec[T]](loc *locator.Locator) (T, error) {
	return fieldread.Read[T, PT](func(buf []byte) int32 {
		return host.GetTxNestedField(loc.Bytes(), buf)
	})
}

// GetNestedFieldOptional reads a nested field from the current
// transaction, reporting absence instead of failing.
func GetNestedFieldOptional[T any, PT types.Codec[T]](loc *locator.Locator) (T, bool, error) {
	return fieldread.ReadOptional[T, PT](func(buf []byte) int32 {
		return host.GetTxNestedField(loc.Bytes(), buf)
	})
}

// ArrayLen returns the element count of an array field on the current
// transaction.
func ArrayLen(field int32) (int, error) {
	return fieldread.Len(host.GetTxArrayLen(field))
}

// NestedArrayLen returns the element count of the array addressed by loc
// on the current transaction.
func NestedArrayLen(loc *locator.Locator) (int, error) {
	return fieldread.Len(host.GetTxNestedArrayLen(loc.Bytes()))
}

// Account returns the sending account.
func Account() (types.AccountID, error) {
	return GetField(sfield.Account)
}

// TransactionType returns the transaction's type code.
func TransactionType() (types.TransactionType, error) {
	v, err := GetField(sfield.TransactionType)
	return types.TransactionType(int16(v)), err
}

// Sequence returns the transaction sequence number.
func Sequence() (types.UInt32, error) {
	return GetField(sfield.Sequence)
}

// Fee returns the transaction fee.
func Fee() (types.TokenAmount, error) {
	return GetField(sfield.Fee)
}

// Flags returns the transaction flags, if set.
func Flags() (types.UInt32, bool, error) {
	return GetFieldOptional(sfield.Flags)
}

// SourceTag returns the source tag, if set.
func SourceTag() (types.UInt32, bool, error) {
	return GetFieldOptional(sfield.SourceTag)
}

// LastLedgerSequence returns the expiry ledger sequence, if set.
func LastLedgerSequence() (types.UInt32, bool, error) {
	return GetFieldOptional(sfield.LastLedgerSequence)
}

// SigningPubKey returns the public key the transaction was signed with.
func SigningPubKey() (types.Blob, error) {
	return GetField(sfield.SigningPubKey)
}

// AccountTxnID returns the AccountTxnID common field, if set.
func AccountTxnID() (types.Hash256, bool, error) {
	return GetFieldOptional(sfield.AccountTxnID)
}

// MemoCount returns the number of attached memos.
func MemoCount() (int, error) {
	return ArrayLen(sfield.Memos)
}
