package txbuilder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func TestBuildAndEmit(t *testing.T) {
	host.MockT(t, "build_txn", func(c *host.Call) int32 {
		if c.I32[0] != int32(types.TxPayment) {
			t.Errorf("type = %d, want %d", c.I32[0], types.TxPayment)
		}
		return 3
	})

	b, err := New(types.TxPayment)
	if err != nil {
		t.Fatal(err)
	}
	if b.Index() != 3 {
		t.Errorf("index = %d, want 3", b.Index())
	}

	var added struct {
		index, field int32
		data         []byte
	}
	host.MockT(t, "add_txn_field", func(c *host.Call) int32 {
		added.index, added.field = c.I32[0], c.I32[1]
		added.data = append([]byte(nil), c.In[0]...)
		return 0
	})
	if err := SetField(b, sfield.Sequence, types.UInt32(9)); err != nil {
		t.Fatal(err)
	}
	if added.index != 3 || added.field != sfield.Sequence.Code() {
		t.Errorf("added to index %d field %d", added.index, added.field)
	}
	if !bytes.Equal(added.data, []byte{0, 0, 0, 9}) {
		t.Errorf("data = %v", added.data)
	}

	var emitted int32 = -1
	host.MockT(t, "emit_built_txn", func(c *host.Call) int32 {
		emitted = c.I32[0]
		return 0
	})
	if err := b.Emit(); err != nil {
		t.Fatal(err)
	}
	if emitted != 3 {
		t.Errorf("emitted index = %d", emitted)
	}
}

func TestNewError(t *testing.T) {
	host.MockT(t, "build_txn", host.ReturnCode(host.ErrInvalidParams.Code()))
	if _, err := New(types.TxPayment); !errors.Is(err, host.ErrInvalidParams) {
		t.Errorf("err = %v", err)
	}
}

func TestEmitRaw(t *testing.T) {
	var sent []byte
	host.MockT(t, "emit_txn", func(c *host.Call) int32 {
		sent = append([]byte(nil), c.In[0]...)
		return 0
	})
	if err := EmitRaw([]byte{0x12, 0x00}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(sent, []byte{0x12, 0x00}) {
		t.Errorf("sent = %x", sent)
	}
}
