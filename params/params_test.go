package params

import (
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func TestFunctionScalar(t *testing.T) {
	host.MockT(t, "function_param", func(c *host.Call) int32 {
		if c.I32[0] != 1 {
			t.Errorf("index = %d, want 1", c.I32[0])
		}
		if c.I32[1] != int32(types.STIUInt32) {
			t.Errorf("type id = %d, want %d", c.I32[1], types.STIUInt32)
		}
		copy(c.Out, []byte{0, 0, 1, 0})
		return 4
	})

	v, err := Function[types.UInt32](1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 256 {
		t.Errorf("v = %d, want 256", v)
	}
}

func TestInstanceAccount(t *testing.T) {
	want := types.AccountID{0xEE, 0x01}
	host.MockT(t, "instance_param", func(c *host.Call) int32 {
		if c.I32[1] != int32(types.STIAccount) {
			t.Errorf("type id = %d", c.I32[1])
		}
		copy(c.Out, want[:])
		return 20
	})

	acct, err := Instance[types.AccountID](0)
	if err != nil {
		t.Fatal(err)
	}
	if acct != want {
		t.Errorf("acct = %x", acct)
	}
}

func TestTypeMismatch(t *testing.T) {
	host.MockT(t, "function_param", host.ReturnCode(host.ErrInvalidParams.Code()))
	if _, err := Function[types.UInt64](0); !errors.Is(err, host.ErrInvalidParams) {
		t.Errorf("err = %v", err)
	}
}

func TestScalarSizeMismatch(t *testing.T) {
	host.MockT(t, "instance_param", host.ReturnCode(3))
	if _, err := Instance[types.UInt32](2); !errors.Is(err, host.ErrInternal) {
		t.Errorf("err = %v", err)
	}
}
