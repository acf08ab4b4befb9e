package emulator

import (
	"encoding/binary"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/contractdata"
	"github.com/xrplf/xrpl-wasm-go/currenttx"
	"github.com/xrplf/xrpl-wasm-go/keylet"
	"github.com/xrplf/xrpl-wasm-go/ledger"
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// These tests run the guest packages end to end against a Machine
// through the mock registry, with no wasm involved.

func TestGuestReadsTransaction(t *testing.T) {
	m := NewMachine()
	acct := types.AccountID{0xAA, 0x01}
	m.Tx.Fields[sfield.Account.Code()] = acct[:]
	seq := make([]byte, 4)
	binary.LittleEndian.PutUint32(seq, 77)
	m.Tx.Fields[sfield.Sequence.Code()] = seq
	m.Install(t)

	got, err := currenttx.Account()
	if err != nil {
		t.Fatal(err)
	}
	if got != acct {
		t.Errorf("account = %x", got)
	}
	s, err := currenttx.Sequence()
	if err != nil {
		t.Fatal(err)
	}
	if s != 77 {
		t.Errorf("sequence = %d", s)
	}
}

func TestGuestContractDataRoundTrip(t *testing.T) {
	m := NewMachine()
	m.Install(t)

	owner := types.AccountID{0xAA, 0x01}
	if err := contractdata.Set(owner, []byte("count"), types.UInt64(1<<40)); err != nil {
		t.Fatal(err)
	}
	v, ok := contractdata.Get[types.UInt64](owner, []byte("count"))
	if !ok {
		t.Fatal("stored value reported absent")
	}
	if v != 1<<40 {
		t.Errorf("v = %d", v)
	}

	if _, ok := contractdata.Get[types.UInt64](owner, []byte("other")); ok {
		t.Error("absent key reported present")
	}
}

func TestGuestKeyletAndLedger(t *testing.T) {
	m := NewMachine()
	m.LedgerSeq = 123
	m.Install(t)

	owner := types.AccountID{0xAA, 0x01}
	k1, err := keylet.Escrow(owner, 5)
	if err != nil {
		t.Fatal(err)
	}
	k2, err := keylet.Escrow(owner, 5)
	if err != nil {
		t.Fatal(err)
	}
	if k1 != k2 {
		t.Error("keylet not deterministic")
	}

	seq, err := ledger.Sequence()
	if err != nil {
		t.Fatal(err)
	}
	if seq != 123 {
		t.Errorf("ledger sequence = %d", seq)
	}
}
