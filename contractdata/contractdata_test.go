package contractdata

import (
	"bytes"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

var owner = types.AccountID{0x7A, 0x01}

func TestSetWritesTaggedValue(t *testing.T) {
	var stored []byte
	host.MockT(t, "set_data_object_field", func(c *host.Call) int32 {
		stored = append([]byte(nil), c.In[2]...)
		return 0
	})

	if err := Set(owner, []byte("count"), types.UInt32(0x01020304)); err != nil {
		t.Fatal(err)
	}
	want := []byte{types.STIUInt32, 1, 2, 3, 4}
	if !bytes.Equal(stored, want) {
		t.Errorf("stored = %v, want %v", stored, want)
	}
}

func TestGetRoundTrip(t *testing.T) {
	host.MockT(t, "get_data_object_field", func(c *host.Call) int32 {
		if !bytes.Equal(c.In[1], []byte("count")) {
			return host.ErrFieldNotFound.Code()
		}
		copy(c.Out, []byte{0, 0, 0, 42})
		return 4
	})

	v, ok := Get[types.UInt32](owner, []byte("count"))
	if !ok {
		t.Fatal("value reported absent")
	}
	// Data-store scalars travel big-endian.
	if v != 42 {
		t.Errorf("v = %d, want 42", v)
	}
}

func TestGetMissing(t *testing.T) {
	host.MockT(t, "get_data_object_field", host.ReturnCode(host.ErrFieldNotFound.Code()))
	if _, ok := Get[types.UInt32](owner, []byte("absent")); ok {
		t.Error("missing key reported present")
	}
}

func TestGetSizeMismatchReadsAsAbsent(t *testing.T) {
	host.MockT(t, "get_data_object_field", host.ReturnCode(3))
	if _, ok := Get[types.UInt32](owner, []byte("count")); ok {
		t.Error("short value reported present")
	}
}

func TestArrayElementRoundTrip(t *testing.T) {
	var setIndex int32
	host.MockT(t, "set_data_array_element_field", func(c *host.Call) int32 {
		setIndex = c.I32[0]
		return 0
	})
	if err := SetArrayElement(owner, []byte("holders"), 2, types.AccountID{0xBB}); err != nil {
		t.Fatal(err)
	}
	if setIndex != 2 {
		t.Errorf("index = %d, want 2", setIndex)
	}

	host.MockT(t, "get_data_array_element_field", func(c *host.Call) int32 {
		c.Out[0] = 0xBB
		return 20
	})
	acct, ok := GetArrayElement[types.AccountID](owner, []byte("holders"), 2)
	if !ok || acct[0] != 0xBB {
		t.Errorf("acct=%v ok=%v", acct, ok)
	}
}
