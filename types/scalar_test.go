package types

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
)

func TestScalarReadFieldLittleEndian(t *testing.T) {
	var v32 UInt32
	if err := v32.ReadField([]byte{0x61, 0x00, 0x00, 0x00}, 4); err != nil {
		t.Fatal(err)
	}
	if v32 != 97 {
		t.Errorf("UInt32 = %d, want 97", v32)
	}

	var v16 UInt16
	if err := v16.ReadField([]byte{0x34, 0x12}, 2); err != nil {
		t.Fatal(err)
	}
	if v16 != 0x1234 {
		t.Errorf("UInt16 = %#x, want 0x1234", v16)
	}

	var v64 UInt64
	if err := v64.ReadField([]byte{1, 0, 0, 0, 0, 0, 0, 0}, 8); err != nil {
		t.Fatal(err)
	}
	if v64 != 1 {
		t.Errorf("UInt64 = %d, want 1", v64)
	}
}

func TestScalarReadFieldSizeMismatch(t *testing.T) {
	var v UInt32
	for _, n := range []int{3, 5} {
		err := v.ReadField(make([]byte, 8), n)
		if !errors.Is(err, host.ErrInternal) {
			t.Errorf("n=%d: err = %v, want ErrInternal", n, err)
		}
	}
}

func TestScalarAppendDataBigEndian(t *testing.T) {
	v := UInt32(0x01020304)
	got := v.AppendData(nil)
	if !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("AppendData = %v", got)
	}
	if v.STI() != STIUInt32 {
		t.Errorf("STI = %d", v.STI())
	}
}

func TestCurrencyFromStandardCode(t *testing.T) {
	c := CurrencyFromStandardCode([3]byte{'U', 'S', 'D'})
	var want Currency
	copy(want[12:15], "USD")
	if c != want {
		t.Errorf("currency = %v, want %v", c, want)
	}
}

func TestTransactionTypeReadField(t *testing.T) {
	var tx TransactionType
	if err := tx.ReadField([]byte{0x02, 0x00}, 2); err != nil {
		t.Fatal(err)
	}
	if tx != TxEscrowFinish {
		t.Errorf("type = %d, want EscrowFinish", tx)
	}

	if err := tx.ReadField([]byte{0xFF, 0xFF}, 2); err != nil {
		t.Fatal(err)
	}
	if tx != TxInvalid {
		t.Errorf("type = %d, want Invalid", tx)
	}
}

func TestBlobReadField(t *testing.T) {
	var b Blob
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x00}
	if err := b.ReadField(buf, 4); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 4 || !bytes.Equal(b.Bytes(), []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("blob = %v len %d", b.Bytes(), b.Len())
	}
}

func TestIssueReadField(t *testing.T) {
	var i Issue
	if err := i.ReadField(make([]byte, 20), 20); err != nil {
		t.Fatal(err)
	}
	if i.Kind != IssueXRP {
		t.Errorf("kind = %v, want XRP", i.Kind)
	}

	cur := CurrencyFromStandardCode([3]byte{'E', 'U', 'R'})
	issuer := AccountID{5}
	buf := append(append([]byte(nil), cur[:]...), issuer[:]...)
	if err := i.ReadField(buf, 40); err != nil {
		t.Fatal(err)
	}
	if i.Kind != IssueIOU || i.Currency != cur || i.Issuer != issuer {
		t.Errorf("issue = %+v", i)
	}

	if err := i.ReadField(make([]byte, 40), 17); err == nil {
		t.Error("odd length accepted")
	}
}
