package ledgerobj

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/locator"
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// accountRootFixture serves get_ledger_obj_field for a small AccountRoot
// with a configurable EmailHash.
func accountRootFixture(t *testing.T, withEmailHash bool) {
	t.Helper()
	account := types.AccountID{0xAE, 0x12, 0x3A, 0x85, 0x56}
	host.MockT(t, "get_ledger_obj_field", func(c *host.Call) int32 {
		switch c.I32[1] {
		case sfield.LedgerEntryType.Code():
			binary.LittleEndian.PutUint16(c.Out, 97)
			return 2
		case sfield.Account.Code():
			copy(c.Out, account[:])
			return 20
		case sfield.Balance.Code():
			var amt [types.TokenAmountSize]byte
			binary.BigEndian.PutUint64(amt[0:8], 25_000_000)
			amt[0] |= 0x40
			copy(c.Out, amt[:])
			return types.TokenAmountSize
		case sfield.EmailHash.Code():
			if !withEmailHash {
				return host.ErrFieldNotFound.Code()
			}
			copy(c.Out, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
			return 16
		default:
			return host.ErrFieldNotFound.Code()
		}
	})
}

func TestAccountRootFields(t *testing.T) {
	accountRootFixture(t, true)
	slot := int32(1)

	entryType, err := GetField(slot, sfield.LedgerEntryType)
	if err != nil {
		t.Fatal(err)
	}
	if entryType != 97 {
		t.Errorf("LedgerEntryType = %d, want 97", entryType)
	}

	account, err := GetField(slot, sfield.Account)
	if err != nil {
		t.Fatal(err)
	}
	if account[0] != 0xAE {
		t.Errorf("account = %v", account)
	}

	balance, err := GetField(slot, sfield.Balance)
	if err != nil {
		t.Fatal(err)
	}
	if balance.Kind != types.AmountXRP || balance.Drops != 25_000_000 {
		t.Errorf("balance = %+v", balance)
	}
}

func TestOptionalFieldPresent(t *testing.T) {
	accountRootFixture(t, true)

	hash, ok, err := GetFieldOptional(1, sfield.EmailHash)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("EmailHash reported absent")
	}
	if hash[0] != 1 || hash[15] != 16 {
		t.Errorf("hash = %v", hash)
	}
}

func TestOptionalFieldAbsent(t *testing.T) {
	accountRootFixture(t, false)

	_, ok, err := GetFieldOptional(1, sfield.EmailHash)
	if err != nil {
		t.Fatalf("absent optional field errored: %v", err)
	}
	if ok {
		t.Error("absent field reported present")
	}

	_, err = GetField(1, sfield.EmailHash)
	if !errors.Is(err, host.ErrFieldNotFound) {
		t.Errorf("required variant err = %v, want ErrFieldNotFound", err)
	}
}

func TestFieldSizeMismatch(t *testing.T) {
	host.MockT(t, "get_ledger_obj_field", func(c *host.Call) int32 {
		return 3 // wrong for a 4-byte field
	})
	_, err := GetField(0, sfield.Sequence)
	if !errors.Is(err, host.ErrInternal) {
		t.Errorf("err = %v, want ErrInternal", err)
	}

	host.MockT(t, "get_ledger_obj_field", func(c *host.Call) int32 {
		return 5
	})
	_, err = GetField(0, sfield.Sequence)
	if !errors.Is(err, host.ErrInternal) {
		t.Errorf("err = %v, want ErrInternal", err)
	}
}

func TestNestedFieldUsesLocator(t *testing.T) {
	var seen []byte
	host.MockT(t, "get_ledger_obj_nested_field", func(c *host.Call) int32 {
		seen = append([]byte(nil), c.In[0]...)
		copy(c.Out, []byte{0xAB, 0xCD})
		return 2
	})

	loc := locator.New()
	loc.Pack(sfield.Memos)
	loc.Pack(0)
	loc.Pack(sfield.MemoType.Code())

	blob, err := GetNestedField[types.Blob](2, loc)
	if err != nil {
		t.Fatal(err)
	}
	if blob.Len() != 2 {
		t.Errorf("blob len = %d", blob.Len())
	}
	if len(seen) != 12 {
		t.Errorf("locator bytes = %d, want 12", len(seen))
	}
}

func TestCache(t *testing.T) {
	host.MockT(t, "cache_ledger_obj", func(c *host.Call) int32 {
		if len(c.In[0]) != 32 {
			t.Errorf("keylet length = %d", len(c.In[0]))
		}
		return 3
	})
	slot, err := Cache(types.Hash256{1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if slot != 3 {
		t.Errorf("slot = %d, want 3", slot)
	}

	host.MockT(t, "cache_ledger_obj", host.ReturnCode(host.ErrSlotsFull.Code()))
	_, err = Cache(types.Hash256{1}, 0)
	if !errors.Is(err, host.ErrSlotsFull) {
		t.Errorf("err = %v, want ErrSlotsFull", err)
	}
}

func TestArrayLen(t *testing.T) {
	host.MockT(t, "get_ledger_obj_array_len", host.ReturnCode(4))
	n, err := ArrayLen(1, sfield.Memos)
	if err != nil || n != 4 {
		t.Errorf("n=%d err=%v", n, err)
	}

	host.MockT(t, "get_ledger_obj_array_len", host.ReturnCode(host.ErrNoArray.Code()))
	_, err = ArrayLen(1, sfield.Memos)
	if !errors.Is(err, host.ErrNoArray) {
		t.Errorf("err = %v, want ErrNoArray", err)
	}
}
