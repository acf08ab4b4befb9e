package trace

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func TestLog(t *testing.T) {
	host.MockT(t, "trace", func(c *host.Call) int32 {
		if string(c.In[0]) != "hello" {
			t.Errorf("msg = %q", c.In[0])
		}
		if len(c.In[1]) != 0 {
			t.Errorf("data = %x, want empty", c.In[1])
		}
		if c.I32[0] != int32(AsUTF8) {
			t.Errorf("repr = %d", c.I32[0])
		}
		return 0
	})
	if err := Log("hello"); err != nil {
		t.Fatal(err)
	}
}

func TestDataAsHex(t *testing.T) {
	host.MockT(t, "trace", func(c *host.Call) int32 {
		if !bytes.Equal(c.In[1], []byte{0xDE, 0xAD}) {
			t.Errorf("data = %x", c.In[1])
		}
		if c.I32[0] != int32(AsHex) {
			t.Errorf("repr = %d", c.I32[0])
		}
		return 0
	})
	if err := Data("payload", []byte{0xDE, 0xAD}, AsHex); err != nil {
		t.Fatal(err)
	}
}

func TestNum(t *testing.T) {
	host.MockT(t, "trace_num", func(c *host.Call) int32 {
		if c.I64 != -42 {
			t.Errorf("number = %d, want -42", c.I64)
		}
		return 0
	})
	if err := Num("n", -42); err != nil {
		t.Fatal(err)
	}
}

func TestAmountSendsSTAmountForm(t *testing.T) {
	host.MockT(t, "trace_amount", func(c *host.Call) int32 {
		if len(c.In[1]) != types.TokenAmountSize {
			t.Errorf("amount length = %d, want %d", len(c.In[1]), types.TokenAmountSize)
		}
		if c.In[1][0]&0x40 == 0 {
			t.Error("positive flag missing")
		}
		return 0
	})
	if err := Amount("fee", types.XRPAmount(10)); err != nil {
		t.Fatal(err)
	}
}

func TestHostErrorSurfaces(t *testing.T) {
	host.MockT(t, "trace_account", host.ReturnCode(host.ErrInvalidAccount.Code()))
	if err := Account("who", types.AccountID{}); !errors.Is(err, host.ErrInvalidAccount) {
		t.Errorf("err = %v", err)
	}
}
