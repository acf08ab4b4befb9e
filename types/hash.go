package types

import "github.com/xrplf/xrpl-wasm-go/host"

const (
	Hash128Size = 16
	Hash160Size = 20
	Hash192Size = 24
	Hash256Size = 32
)

type Hash128 [Hash128Size]byte

func (*Hash128) FieldCapacity() int { return Hash128Size }
func (*Hash128) WireSize() int      { return Hash128Size }

func (h *Hash128) ReadField(buf []byte, n int) error {
	if n != Hash128Size {
		return host.ErrInternal
	}
	copy(h[:], buf)
	return nil
}

func (*Hash128) STI() byte { return STIUInt128 }

func (h *Hash128) ReadData(buf []byte, n int) error { return h.ReadField(buf, n) }

func (h *Hash128) AppendData(dst []byte) []byte { return append(dst, h[:]...) }

type Hash160 [Hash160Size]byte

func (*Hash160) FieldCapacity() int { return Hash160Size }
func (*Hash160) WireSize() int      { return Hash160Size }

func (h *Hash160) ReadField(buf []byte, n int) error {
	if n != Hash160Size {
		return host.ErrInternal
	}
	copy(h[:], buf)
	return nil
}

func (*Hash160) STI() byte { return STIUInt160 }

func (h *Hash160) ReadData(buf []byte, n int) error { return h.ReadField(buf, n) }

func (h *Hash160) AppendData(dst []byte) []byte { return append(dst, h[:]...) }

type Hash192 [Hash192Size]byte

func (*Hash192) FieldCapacity() int { return Hash192Size }
func (*Hash192) WireSize() int      { return Hash192Size }

func (h *Hash192) ReadField(buf []byte, n int) error {
	if n != Hash192Size {
		return host.ErrInternal
	}
	copy(h[:], buf)
	return nil
}

func (*Hash192) STI() byte { return STIUInt192 }

func (h *Hash192) ReadData(buf []byte, n int) error { return h.ReadField(buf, n) }

func (h *Hash192) AppendData(dst []byte) []byte { return append(dst, h[:]...) }

type Hash256 [Hash256Size]byte

func (*Hash256) FieldCapacity() int { return Hash256Size }
func (*Hash256) WireSize() int      { return Hash256Size }

func (h *Hash256) ReadField(buf []byte, n int) error {
	if n != Hash256Size {
		return host.ErrInternal
	}
	copy(h[:], buf)
	return nil
}

func (*Hash256) STI() byte { return STIUInt256 }

func (h *Hash256) ReadData(buf []byte, n int) error { return h.ReadField(buf, n) }

func (h *Hash256) AppendData(dst []byte) []byte { return append(dst, h[:]...) }

// IsZero reports whether the hash is all zero bytes.
func (h Hash256) IsZero() bool {
	return h == Hash256{}
}
