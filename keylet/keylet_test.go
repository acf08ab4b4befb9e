package keylet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func TestEscrowPassesArguments(t *testing.T) {
	owner := types.AccountID{0xAA, 0x01}
	want := types.Hash256{0xC0, 0xFF, 0xEE}

	host.MockT(t, "escrow_keylet", func(c *host.Call) int32 {
		if !bytes.Equal(c.In[0], owner[:]) {
			t.Errorf("account = %x", c.In[0])
		}
		if c.I32[0] != 7 {
			t.Errorf("sequence = %d, want 7", c.I32[0])
		}
		copy(c.Out, want[:])
		return 32
	})

	k, err := Escrow(owner, 7)
	if err != nil {
		t.Fatal(err)
	}
	if k != want {
		t.Errorf("keylet = %x, want %x", k, want)
	}
}

func TestAccountHostError(t *testing.T) {
	host.MockT(t, "account_keylet", host.ReturnCode(host.ErrInvalidAccount.Code()))
	if _, err := Account(types.AccountID{}); !errors.Is(err, host.ErrInvalidAccount) {
		t.Errorf("err = %v, want ErrInvalidAccount", err)
	}
}

func TestShortKeyletRejected(t *testing.T) {
	host.MockT(t, "did_keylet", host.ReturnCode(20))
	if _, err := Did(types.AccountID{}); !errors.Is(err, host.ErrInternal) {
		t.Errorf("err = %v, want ErrInternal", err)
	}
}

func TestLinePassesCurrency(t *testing.T) {
	cur := types.CurrencyFromStandardCode([3]byte{'U', 'S', 'D'})
	host.MockT(t, "line_keylet", func(c *host.Call) int32 {
		if !bytes.Equal(c.In[2], cur[:]) {
			t.Errorf("currency = %x", c.In[2])
		}
		return 32
	})
	if _, err := Line(types.AccountID{1}, types.AccountID{2}, cur); err != nil {
		t.Fatal(err)
	}
}

func TestSha512Half(t *testing.T) {
	host.MockT(t, "compute_sha512_half", func(c *host.Call) int32 {
		if !bytes.Equal(c.In[0], []byte("payload")) {
			t.Errorf("data = %q", c.In[0])
		}
		c.Out[0] = 0x5A
		return 32
	})
	h, err := Sha512Half([]byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	if h[0] != 0x5A {
		t.Errorf("h[0] = %#x", h[0])
	}
}

func TestCheckSig(t *testing.T) {
	var sig types.Signature
	copy(sig.Data[:], []byte{1, 2, 3})
	sig.Len = 3
	var pk types.PublicKey
	pk[0] = 0xED

	host.MockT(t, "check_sig", func(c *host.Call) int32 {
		if len(c.In[1]) != 3 {
			t.Errorf("signature length = %d, want 3", len(c.In[1]))
		}
		if !bytes.Equal(c.In[2], pk[:]) {
			t.Errorf("pubkey = %x", c.In[2])
		}
		return 1
	})
	ok, err := CheckSig([]byte("msg"), sig, pk)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("valid signature reported invalid")
	}

	host.MockT(t, "check_sig", host.ReturnCode(0))
	ok, err = CheckSig([]byte("msg"), sig, pk)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("invalid signature reported valid")
	}
}
