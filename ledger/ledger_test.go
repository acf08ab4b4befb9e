package ledger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func TestSequence(t *testing.T) {
	host.MockT(t, "get_ledger_sqn", host.ReturnCode(91234567))
	seq, err := Sequence()
	if err != nil {
		t.Fatal(err)
	}
	if seq != 91234567 {
		t.Errorf("seq = %d", seq)
	}
}

func TestSequenceError(t *testing.T) {
	host.MockT(t, "get_ledger_sqn", host.ReturnCode(host.ErrInternal.Code()))
	if _, err := Sequence(); !errors.Is(err, host.ErrInternal) {
		t.Errorf("err = %v", err)
	}
}

func TestParentHash(t *testing.T) {
	want := types.Hash256{0xAB, 0xCD}
	host.MockT(t, "get_parent_ledger_hash", host.ReturnBytes(want[:]))
	h, err := ParentHash()
	if err != nil {
		t.Fatal(err)
	}
	if h != want {
		t.Errorf("hash = %x", h)
	}
}

func TestAmendmentEnabled(t *testing.T) {
	amendment := types.Hash256{0x11}
	host.MockT(t, "amendment_enabled", func(c *host.Call) int32 {
		if !bytes.Equal(c.In[0], amendment[:]) {
			t.Errorf("amendment = %x", c.In[0])
		}
		return 1
	})
	on, err := AmendmentEnabled(amendment)
	if err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Error("enabled amendment reported off")
	}

	host.MockT(t, "amendment_enabled", host.ReturnCode(0))
	on, err = AmendmentEnabled(amendment)
	if err != nil {
		t.Fatal(err)
	}
	if on {
		t.Error("disabled amendment reported on")
	}
}
