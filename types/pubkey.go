package types

import "github.com/xrplf/xrpl-wasm-go/host"

const (
	PublicKeySize    = 33
	SignatureMaxSize = 72
	ConditionSize    = 32
	FulfillmentMax   = 256
)

// PublicKey is a 33-byte compressed secp256k1 or prefixed ed25519 key.
type PublicKey [PublicKeySize]byte

func (*PublicKey) FieldCapacity() int { return PublicKeySize }
func (*PublicKey) WireSize() int      { return PublicKeySize }

func (k *PublicKey) ReadField(buf []byte, n int) error {
	if n != PublicKeySize {
		return host.ErrInternal
	}
	copy(k[:], buf)
	return nil
}

// Signature is a DER-encoded transaction signature, at most 72 bytes.
type Signature struct {
	Data [SignatureMaxSize]byte
	Len  int
}

func (s Signature) Bytes() []byte { return s.Data[:s.Len] }

func (*Signature) FieldCapacity() int { return SignatureMaxSize }
func (*Signature) WireSize() int      { return -1 }

func (s *Signature) ReadField(buf []byte, n int) error {
	if n > SignatureMaxSize {
		return host.ErrInternal
	}
	copy(s.Data[:], buf[:n])
	s.Len = n
	return nil
}

// Condition is a 32-byte crypto-condition used by escrows.
type Condition [ConditionSize]byte

func (*Condition) FieldCapacity() int { return ConditionSize }
func (*Condition) WireSize() int      { return ConditionSize }

func (c *Condition) ReadField(buf []byte, n int) error {
	if n != ConditionSize {
		return host.ErrInternal
	}
	copy(c[:], buf)
	return nil
}

// Fulfillment is a crypto-condition fulfillment, capped at 256 bytes by
// rippled.
type Fulfillment struct {
	Data [FulfillmentMax]byte
	Len  int
}

func (f Fulfillment) Bytes() []byte { return f.Data[:f.Len] }

func (*Fulfillment) FieldCapacity() int { return FulfillmentMax }
func (*Fulfillment) WireSize() int      { return -1 }

func (f *Fulfillment) ReadField(buf []byte, n int) error {
	if n > FulfillmentMax {
		return host.ErrInternal
	}
	copy(f.Data[:], buf[:n])
	f.Len = n
	return nil
}
