package types

import (
	"encoding/binary"

	"github.com/xrplf/xrpl-wasm-go/host"
)

// TokenAmount decodes and encodes the 48-byte STAmount layout.
//
// Byte 0 carries the variant flags: bit 7 set means IOU, bit 6 is the sign
// (set for positive), and bit 5 distinguishes MPT from XRP when bit 7 is
// clear.
//
//   - XRP: the drop magnitude lives in bits 0-56 of the first 8 bytes,
//     big-endian, masked with 0x01FFFFFFFFFFFFFF.
//   - MPT: bytes 1-8 hold a big-endian u64 quantity, bytes 9-32 the 24-byte
//     issuance id.
//   - IOU: bytes 0-7 are the opaque host float, bytes 8-27 the currency,
//     bytes 28-47 the issuer.
//
// Decoding accepts exactly 48 bytes; shorter raw forms are zero-padded by
// callers before reaching FromBytes.

const (
	TokenAmountSize = 48

	flagIOU      = 0x80
	flagPositive = 0x40
	flagMPT      = 0x20

	dropsMask = 0x01FFFFFFFFFFFFFF
)

type AmountKind uint8

const (
	AmountXRP AmountKind = iota
	AmountIOU
	AmountMPT
)

type TokenAmount struct {
	Kind AmountKind

	// Drops is the signed drop count of an XRP amount.
	Drops int64

	// Float, Currency and Issuer describe an IOU amount. Float is opaque
	// and must only be touched through the float host calls.
	Float    OpaqueFloat
	Currency Currency
	Issuer   AccountID

	// Units, Positive and MptID describe an MPT amount. Quantities are
	// not expected to be negative but the sign bit is preserved.
	Units    uint64
	Positive bool
	MptID    MptID
}

// XRPAmount builds an XRP amount from a signed drop count.
func XRPAmount(drops int64) TokenAmount {
	return TokenAmount{Kind: AmountXRP, Drops: drops}
}

// IOUAmount builds an issued-currency amount.
func IOUAmount(f OpaqueFloat, currency Currency, issuer AccountID) TokenAmount {
	return TokenAmount{Kind: AmountIOU, Float: f, Currency: currency, Issuer: issuer}
}

// MPTAmount builds a multi-purpose token amount.
func MPTAmount(units uint64, positive bool, id MptID) TokenAmount {
	return TokenAmount{Kind: AmountMPT, Units: units, Positive: positive, MptID: id}
}

// AmountFromBytes decodes the unified 48-byte representation. Any other
// input length is rejected with ErrInternal.
func AmountFromBytes(b []byte) (TokenAmount, error) {
	if len(b) != TokenAmountSize {
		return TokenAmount{}, host.ErrInternal
	}

	byte0 := b[0]
	positive := byte0&flagPositive != 0

	if byte0&flagIOU == 0 {
		if byte0&flagMPT == 0 {
			magnitude := int64(binary.BigEndian.Uint64(b[0:8]) & dropsMask)
			if !positive {
				magnitude = -magnitude
			}
			return TokenAmount{Kind: AmountXRP, Drops: magnitude}, nil
		}

		out := TokenAmount{
			Kind:     AmountMPT,
			Units:    binary.BigEndian.Uint64(b[1:9]),
			Positive: positive,
		}
		copy(out.MptID[:], b[9:33])
		return out, nil
	}

	out := TokenAmount{Kind: AmountIOU}
	copy(out.Float[:], b[0:8])
	copy(out.Currency[:], b[8:28])
	copy(out.Issuer[:], b[28:48])
	return out, nil
}

// STAmountBytes encodes the amount into the unified 48-byte layout,
// zero-padding the unused tail for XRP and MPT. The second return value
// is always TokenAmountSize.
func (a TokenAmount) STAmountBytes() ([TokenAmountSize]byte, int) {
	var out [TokenAmountSize]byte

	switch a.Kind {
	case AmountXRP:
		magnitude := uint64(a.Drops)
		positive := a.Drops >= 0
		if !positive {
			magnitude = uint64(-a.Drops)
		}
		binary.BigEndian.PutUint64(out[0:8], magnitude&dropsMask)
		if positive {
			out[0] |= flagPositive
		}

	case AmountMPT:
		out[0] = flagMPT
		if a.Positive {
			out[0] |= flagPositive
		}
		binary.BigEndian.PutUint64(out[1:9], a.Units)
		copy(out[9:33], a.MptID[:])

	case AmountIOU:
		copy(out[0:8], a.Float[:])
		copy(out[8:28], a.Currency[:])
		copy(out[28:48], a.Issuer[:])
	}

	return out, TokenAmountSize
}

func (*TokenAmount) FieldCapacity() int { return TokenAmountSize }
func (*TokenAmount) WireSize() int      { return -1 }

func (a *TokenAmount) ReadField(buf []byte, n int) error {
	if n < 0 || n > TokenAmountSize || len(buf) < TokenAmountSize {
		return host.ErrInternal
	}
	// Shorter raw forms arrive zero-padded in the capacity buffer.
	decoded, err := AmountFromBytes(buf[:TokenAmountSize])
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

func (*TokenAmount) STI() byte { return STIAmount }

func (a *TokenAmount) ReadData(buf []byte, n int) error { return a.ReadField(buf, n) }

func (a *TokenAmount) AppendData(dst []byte) []byte {
	b, n := a.STAmountBytes()
	return append(dst, b[:n]...)
}
