package types

import (
	"encoding/binary"

	"github.com/xrplf/xrpl-wasm-go/host"
)

const MptIDSize = 24

// MptID identifies a multi-purpose token issuance: a 4-byte big-endian
// sequence number followed by the 20-byte issuer account.
type MptID [MptIDSize]byte

// NewMptID composes an MptID from its sequence number and issuer.
func NewMptID(sequence uint32, issuer AccountID) MptID {
	var id MptID
	binary.BigEndian.PutUint32(id[0:4], sequence)
	copy(id[4:], issuer[:])
	return id
}

// Sequence returns the issuance sequence number.
func (id MptID) Sequence() uint32 {
	return binary.BigEndian.Uint32(id[0:4])
}

// Issuer returns the issuer account.
func (id MptID) Issuer() AccountID {
	var a AccountID
	copy(a[:], id[4:])
	return a
}

func (*MptID) FieldCapacity() int { return MptIDSize }
func (*MptID) WireSize() int      { return MptIDSize }

func (id *MptID) ReadField(buf []byte, n int) error {
	if n != MptIDSize {
		return host.ErrInternal
	}
	copy(id[:], buf)
	return nil
}

func (*MptID) STI() byte { return STIUInt192 }

func (id *MptID) ReadData(buf []byte, n int) error { return id.ReadField(buf, n) }

func (id *MptID) AppendData(dst []byte) []byte { return append(dst, id[:]...) }
