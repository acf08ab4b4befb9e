// Package txbuilder assembles and emits transactions from contract code.
//
// A Builder wraps a host-side transaction under construction, identified
// by the index build_txn hands back. Field values travel in canonical
// serialized form (big-endian scalars, raw bytes for everything else).
package txbuilder

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// Builder is a transaction under construction on the host.
type Builder struct {
	index int32
}

// New starts building a transaction of the given type.
func New(txType types.TransactionType) (*Builder, error) {
	rc := host.BuildTxn(int32(txType))
	if rc < 0 {
		return nil, host.FromCode(rc)
	}
	return &Builder{index: rc}, nil
}

// Index returns the host-side handle of the transaction.
func (b *Builder) Index() int32 { return b.index }

// SetField sets a typed field on the transaction.
func SetField[T any, PT types.DataPtr[T]](b *Builder, f sfield.Field[T], value T) error {
	data := PT(&value).AppendData(nil)
	return host.CheckResult(host.AddTxnField(b.index, f.Code(), data))
}

// SetRawField sets a field from already-serialized bytes.
func (b *Builder) SetRawField(field int32, data []byte) error {
	return host.CheckResult(host.AddTxnField(b.index, field, data))
}

// Emit submits the built transaction for emission.
func (b *Builder) Emit() error {
	return host.CheckResult(host.EmitBuiltTxn(b.index))
}

// EmitRaw emits a fully serialized transaction blob as-is.
func EmitRaw(txn []byte) error {
	return host.CheckResult(host.EmitTxn(txn))
}
