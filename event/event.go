// Package event builds the TLV payloads attached to emitted contract
// events.
//
// A Buffer is a single 1024-byte arena. Entries append as
// [keyLen:1][key][valueSize:1][typeCode:1][value], with multi-byte
// integers big-endian. The buffer's first bytes hold a variable-length
// total-size prefix that is back-patched when the buffer is handed to
// the host; if the prefix width grows, the already-written content is
// shifted right to make room.
package event

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

const (
	// BufferSize is the fixed arena size.
	BufferSize = 1024

	// MaxKeyLen bounds entry keys.
	MaxKeyLen = 127

	vl1Max = 192
	vl2Max = 12480
	vl3Max = 918744
)

// Buffer accumulates event entries behind a reserved size prefix.
type Buffer struct {
	data   [BufferSize]byte
	pos    int
	vlSize int
}

// NewBuffer returns an empty buffer with a one-byte size prefix
// reserved.
func NewBuffer() *Buffer {
	return &Buffer{pos: 1, vlSize: 1}
}

// encodeVL writes the 1-, 2- or 3-byte variable-length encoding of n at
// buf[pos:], returning the number of prefix bytes, or 0 when n exceeds
// the encodable maximum.
func encodeVL(buf []byte, pos, n int) int {
	switch {
	case n <= vl1Max:
		buf[pos] = byte(n)
		return 1
	case n <= vl2Max:
		encoded := n - 193
		buf[pos] = byte(193 + encoded>>8)
		buf[pos+1] = byte(encoded & 0xff)
		return 2
	case n <= vl3Max:
		encoded := n - 12481
		buf[pos] = byte(241 + encoded>>16)
		buf[pos+1] = byte(encoded >> 8 & 0xff)
		buf[pos+2] = byte(encoded & 0xff)
		return 3
	default:
		return 0
	}
}

func vlWidth(n int) int {
	switch {
	case n <= vl1Max:
		return 1
	case n <= vl2Max:
		return 2
	default:
		return 3
	}
}

// add appends one complete entry, or fails without touching the buffer.
func (b *Buffer) add(key string, typeCode byte, value []byte) error {
	if len(key) > MaxKeyLen {
		return host.ErrInternal
	}
	need := 1 + len(key) + 1 + 1 + len(value)
	if len(value)+1 > 255 || b.pos+need > BufferSize {
		return host.ErrInternal
	}

	b.data[b.pos] = byte(len(key))
	b.pos++
	copy(b.data[b.pos:], key)
	b.pos += len(key)
	b.data[b.pos] = byte(1 + len(value))
	b.pos++
	b.data[b.pos] = typeCode
	b.pos++
	copy(b.data[b.pos:], value)
	b.pos += len(value)
	return nil
}

// Add appends a typed entry. The value's type supplies both the type
// code and the big-endian wire bytes.
func Add[T any, PT types.DataPtr[T]](b *Buffer, key string, value T) error {
	p := PT(&value)
	return b.add(key, p.STI(), p.AppendData(nil))
}

// AddUInt8 appends an 8-bit entry.
func (b *Buffer) AddUInt8(key string, value uint8) error {
	return b.add(key, types.STIUInt8, []byte{value})
}

// AddUInt16 appends a 16-bit entry.
func (b *Buffer) AddUInt16(key string, value uint16) error {
	return b.add(key, types.STIUInt16, []byte{byte(value >> 8), byte(value)})
}

// AddUInt32 appends a 32-bit entry.
func (b *Buffer) AddUInt32(key string, value uint32) error {
	v := types.UInt32(value)
	return b.add(key, types.STIUInt32, v.AppendData(nil))
}

// AddUInt64 appends a 64-bit entry.
func (b *Buffer) AddUInt64(key string, value uint64) error {
	v := types.UInt64(value)
	return b.add(key, types.STIUInt64, v.AppendData(nil))
}

// AddHash128 appends a 128-bit hash entry.
func (b *Buffer) AddHash128(key string, value types.Hash128) error {
	return b.add(key, types.STIUInt128, value[:])
}

// AddHash160 appends a 160-bit hash entry.
func (b *Buffer) AddHash160(key string, value types.Hash160) error {
	return b.add(key, types.STIUInt160, value[:])
}

// AddHash192 appends a 192-bit hash entry.
func (b *Buffer) AddHash192(key string, value types.Hash192) error {
	return b.add(key, types.STIUInt192, value[:])
}

// AddHash256 appends a 256-bit hash entry.
func (b *Buffer) AddHash256(key string, value types.Hash256) error {
	return b.add(key, types.STIUInt256, value[:])
}

// AddAccount appends an account entry.
func (b *Buffer) AddAccount(key string, value types.AccountID) error {
	return b.add(key, types.STIAccount, value[:])
}

// AddCurrency appends a currency entry.
func (b *Buffer) AddCurrency(key string, value types.Currency) error {
	return b.add(key, types.STICurrency, value[:])
}

// AddAmount appends an amount entry in the 48-byte STAmount layout.
func (b *Buffer) AddAmount(key string, value types.TokenAmount) error {
	raw, n := value.STAmountBytes()
	return b.add(key, types.STIAmount, raw[:n])
}

// AddDrops appends an XRP amount entry in the raw 8-byte drop form.
func (b *Buffer) AddDrops(key string, drops [8]byte) error {
	return b.add(key, types.STIAmount, drops[:])
}

// AddString appends a variable-length entry. The value carries its own
// VL length prefix inside the entry.
func (b *Buffer) AddString(key, value string) error {
	return b.AddBytes(key, []byte(value))
}

// AddBytes appends a variable-length entry.
func (b *Buffer) AddBytes(key string, value []byte) error {
	if len(key) > MaxKeyLen || len(value) > vl3Max {
		return host.ErrInternal
	}
	vlLen := vlWidth(len(value))
	need := 1 + len(key) + 1 + 1 + vlLen + len(value)
	if 1+vlLen+len(value) > 255 || b.pos+need > BufferSize {
		return host.ErrInternal
	}

	b.data[b.pos] = byte(len(key))
	b.pos++
	copy(b.data[b.pos:], key)
	b.pos += len(key)
	b.data[b.pos] = byte(1 + vlLen + len(value))
	b.pos++
	b.data[b.pos] = types.STIVL
	b.pos++
	b.pos += encodeVL(b.data[:], b.pos, len(value))
	copy(b.data[b.pos:], value)
	b.pos += len(value)
	return nil
}

// updateTotalSize recomputes the required VL-prefix width and, when it
// grew, shifts the content right back-to-front before rewriting the
// prefix at offset 0.
func (b *Buffer) updateTotalSize() {
	contentSize := b.pos - b.vlSize
	needed := vlWidth(contentSize)

	if needed != b.vlSize {
		shift := needed - b.vlSize
		if shift > 0 {
			for i := b.pos - 1; i >= b.vlSize; i-- {
				b.data[i+shift] = b.data[i]
			}
			b.pos += shift
		}
		b.vlSize = needed
	}

	encodeVL(b.data[:], 0, b.pos-b.vlSize)
}

// Bytes finalizes the size prefix and returns the encoded stream.
func (b *Buffer) Bytes() []byte {
	b.updateTotalSize()
	return b.data[:b.pos]
}

// Emit finalizes the buffer and hands it to the host under the given
// event type.
func (b *Buffer) Emit(eventType string) error {
	payload := b.Bytes()
	return host.CheckResult(host.EmitEvent([]byte(eventType), payload))
}
