package currenttx

import (
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// EscrowFinish exposes the fields specific to an EscrowFinish
// transaction, on top of the common accessors in this package.
type EscrowFinish struct{}

// CurrentEscrowFinish returns an accessor for the transaction in
// context. The caller is responsible for knowing the transaction type;
// field reads fail when the field is not present.
func CurrentEscrowFinish() EscrowFinish {
	return EscrowFinish{}
}

// Owner returns the account that funded the escrow.
func (EscrowFinish) Owner() (types.AccountID, error) {
	return GetField(sfield.Owner)
}

// OfferSequence returns the sequence number of the EscrowCreate
// transaction that created the escrow.
func (EscrowFinish) OfferSequence() (types.UInt32, error) {
	return GetField(sfield.OfferSequence)
}

// Condition returns the crypto-condition, if the escrow carries one.
func (EscrowFinish) Condition() (types.Blob, bool, error) {
	return GetFieldOptional(sfield.Condition)
}

// Fulfillment returns the condition fulfillment, if supplied.
func (EscrowFinish) Fulfillment() (types.Blob, bool, error) {
	return GetFieldOptional(sfield.Fulfillment)
}

// ComputationAllowance returns the gas budget granted to the finish
// function, if set.
func (EscrowFinish) ComputationAllowance() (types.UInt32, bool, error) {
	return GetFieldOptional(sfield.ComputationAllowance)
}
