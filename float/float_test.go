package float

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func TestFromInt64(t *testing.T) {
	host.MockT(t, "float_from_int", func(c *host.Call) int32 {
		if c.I64 != 1500 {
			t.Errorf("value = %d, want 1500", c.I64)
		}
		if c.I32[0] != host.RoundTowardsZero {
			t.Errorf("rounding = %d", c.I32[0])
		}
		copy(c.Out, []byte{1, 2, 3, 4, 5, 6, 7, 8})
		return 8
	})

	f, err := FromInt64(1500, host.RoundTowardsZero)
	if err != nil {
		t.Fatal(err)
	}
	if f != (types.OpaqueFloat{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("f = %x", f)
	}
}

func TestFromUint64SendsBigEndian(t *testing.T) {
	host.MockT(t, "float_from_uint", func(c *host.Call) int32 {
		want := []byte{0, 0, 0, 0, 0, 0, 0x04, 0xD2}
		if !bytes.Equal(c.In[0], want) {
			t.Errorf("in = %x, want %x", c.In[0], want)
		}
		return 8
	})
	if _, err := FromUint64(1234, host.RoundToNearest); err != nil {
		t.Fatal(err)
	}
}

func TestSetPassesExponentAndMantissa(t *testing.T) {
	host.MockT(t, "float_set", func(c *host.Call) int32 {
		if c.I32[0] != -3 {
			t.Errorf("exponent = %d, want -3", c.I32[0])
		}
		if c.I64 != 1999 {
			t.Errorf("mantissa = %d, want 1999", c.I64)
		}
		return 8
	})
	if _, err := Set(-3, 1999, host.RoundToNearest); err != nil {
		t.Fatal(err)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		rc   int32
		want int
	}{
		{"equal", 0, 0},
		{"greater", 1, 1},
		{"less", 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host.MockT(t, "float_compare", host.ReturnCode(tt.rc))
			got, err := Compare(types.OpaqueFloat{}, types.OpaqueFloat{})
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareError(t *testing.T) {
	host.MockT(t, "float_compare", host.ReturnCode(host.ErrInvalidFloatInput.Code()))
	if _, err := Compare(types.OpaqueFloat{}, types.OpaqueFloat{}); !errors.Is(err, host.ErrInvalidFloatInput) {
		t.Errorf("err = %v", err)
	}
}

func TestDivideByZero(t *testing.T) {
	host.MockT(t, "float_divide", host.ReturnCode(host.ErrInvalidFloatComputation.Code()))
	if _, err := Divide(types.OpaqueFloat{}, types.OpaqueFloat{}, host.RoundToNearest); !errors.Is(err, host.ErrInvalidFloatComputation) {
		t.Errorf("err = %v", err)
	}
}

func TestAddPassesOperands(t *testing.T) {
	a := types.OpaqueFloat{0xA1}
	b := types.OpaqueFloat{0xB2}
	host.MockT(t, "float_add", func(c *host.Call) int32 {
		if !bytes.Equal(c.In[0], a[:]) || !bytes.Equal(c.In[1], b[:]) {
			t.Errorf("operands = %x %x", c.In[0], c.In[1])
		}
		copy(c.Out, []byte{0xCC, 0, 0, 0, 0, 0, 0, 0})
		return 8
	})
	sum, err := Add(a, b, host.RoundUpward)
	if err != nil {
		t.Fatal(err)
	}
	if sum[0] != 0xCC {
		t.Errorf("sum = %x", sum)
	}
}

func TestPowPassesExponent(t *testing.T) {
	host.MockT(t, "float_pow", func(c *host.Call) int32 {
		if c.I32[0] != 3 {
			t.Errorf("n = %d, want 3", c.I32[0])
		}
		return 8
	})
	if _, err := Pow(types.OpaqueFloat{}, 3, host.RoundToNearest); err != nil {
		t.Fatal(err)
	}
}

func TestShortResultRejected(t *testing.T) {
	host.MockT(t, "float_log", host.ReturnCode(4))
	if _, err := Log(types.OpaqueFloat{}, host.RoundToNearest); !errors.Is(err, host.ErrInternal) {
		t.Errorf("err = %v", err)
	}
}
