package ledgerobj

import (
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// CurrentEscrow exposes the fields of the escrow entry whose finish
// function is executing.
type CurrentEscrow struct{}

// GetCurrentEscrow returns an accessor for the escrow in context.
func GetCurrentEscrow() CurrentEscrow {
	return CurrentEscrow{}
}

// Account returns the account that funded the escrow.
func (CurrentEscrow) Account() (types.AccountID, error) {
	return GetCurrentField(sfield.Account)
}

// Destination returns the account the escrowed amount is released to.
func (CurrentEscrow) Destination() (types.AccountID, error) {
	return GetCurrentField(sfield.Destination)
}

// Amount returns the escrowed amount.
func (CurrentEscrow) Amount() (types.TokenAmount, error) {
	return GetCurrentField(sfield.Amount)
}

// CancelAfter returns the cancel deadline, if set.
func (CurrentEscrow) CancelAfter() (types.UInt32, bool, error) {
	return GetCurrentFieldOptional(sfield.CancelAfter)
}

// FinishAfter returns the earliest finish time, if set.
func (CurrentEscrow) FinishAfter() (types.UInt32, bool, error) {
	return GetCurrentFieldOptional(sfield.FinishAfter)
}

// Condition returns the crypto-condition, if the escrow carries one.
func (CurrentEscrow) Condition() (types.Blob, bool, error) {
	return GetCurrentFieldOptional(sfield.Condition)
}

// DestinationTag returns the destination tag, if set.
func (CurrentEscrow) DestinationTag() (types.UInt32, bool, error) {
	return GetCurrentFieldOptional(sfield.DestinationTag)
}

// FinishFunction returns the compiled finish function, if present.
func (CurrentEscrow) FinishFunction() (types.Blob, bool, error) {
	return GetCurrentFieldOptional(sfield.FinishFunction)
}

// Data returns the escrow's data blob, if present.
func (CurrentEscrow) Data() (types.Blob, bool, error) {
	return GetCurrentFieldOptional(sfield.Data)
}

// PreviousTxnID returns the hash of the transaction that last modified
// the escrow.
func (CurrentEscrow) PreviousTxnID() (types.Hash256, error) {
	return GetCurrentField(sfield.PreviousTxnID)
}
