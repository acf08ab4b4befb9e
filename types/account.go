package types

import "github.com/xrplf/xrpl-wasm-go/host"

// AccountID is the 20-byte account identifier used throughout the ledger.
// See https://xrpl.org/docs/references/protocol/common-fields#accountid-fields

const AccountIDSize = 20

type AccountID [AccountIDSize]byte

// AccountZero is the address rrrrrrrrrrrrrrrrrrrrrhoLvTp.
var AccountZero = AccountID{}

// AccountOne is the address rrrrrrrrrrrrrrrrrrrrBZbvji.
var AccountOne = AccountID{19: 0x01}

func (*AccountID) FieldCapacity() int { return AccountIDSize }
func (*AccountID) WireSize() int      { return AccountIDSize }

func (a *AccountID) ReadField(buf []byte, n int) error {
	if n != AccountIDSize {
		return host.ErrInternal
	}
	copy(a[:], buf)
	return nil
}

func (*AccountID) STI() byte { return STIAccount }

func (a *AccountID) ReadData(buf []byte, n int) error { return a.ReadField(buf, n) }

func (a *AccountID) AppendData(dst []byte) []byte { return append(dst, a[:]...) }

func (a AccountID) IsZero() bool {
	return a == AccountID{}
}
