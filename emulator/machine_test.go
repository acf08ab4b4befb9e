package emulator

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
)

var testAccount = bytes.Repeat([]byte{0xAA}, 20)

func TestSlotLifecycle(t *testing.T) {
	m := NewMachine()
	obj := NewObject()
	obj.Fields[131076] = []byte{1, 0, 0, 0}

	var keylet [32]byte
	keylet[0] = 0x11
	m.PutObject(keylet, obj)

	slot := m.CacheLedgerObj(keylet[:], 0)
	if slot < 1 {
		t.Fatalf("slot = %d", slot)
	}

	out := make([]byte, 4)
	if rc := m.GetLedgerObjField(slot, 131076, out); rc != 4 {
		t.Fatalf("rc = %d", rc)
	}
	if !bytes.Equal(out, []byte{1, 0, 0, 0}) {
		t.Errorf("out = %v", out)
	}

	if rc := m.GetLedgerObjField(slot+1, 131076, out); rc != host.ErrEmptySlot.Code() {
		t.Errorf("empty slot rc = %d", rc)
	}
	if rc := m.GetLedgerObjField(SlotCount+1, 131076, out); rc != host.ErrSlotOutRange.Code() {
		t.Errorf("out of range rc = %d", rc)
	}

	var missing [32]byte
	missing[0] = 0x22
	if rc := m.CacheLedgerObj(missing[:], 0); rc != host.ErrLedgerObjNotFound.Code() {
		t.Errorf("missing object rc = %d", rc)
	}
}

func TestSlotsFull(t *testing.T) {
	m := NewMachine()
	var keylet [32]byte
	keylet[0] = 0x33
	m.PutObject(keylet, NewObject())

	for i := 0; i < SlotCount; i++ {
		if rc := m.CacheLedgerObj(keylet[:], 0); rc < 1 {
			t.Fatalf("cache %d: rc = %d", i, rc)
		}
	}
	if rc := m.CacheLedgerObj(keylet[:], 0); rc != host.ErrSlotsFull.Code() {
		t.Errorf("rc = %d, want slots full", rc)
	}
}

func TestDataStoreRoundTrip(t *testing.T) {
	m := NewMachine()
	key := []byte("supply")

	// One type byte followed by the value. Reads return just the value.
	if rc := m.SetDataObjectField(testAccount, key, []byte{16, 0x2A}); rc != 0 {
		t.Fatalf("set rc = %d", rc)
	}
	out := make([]byte, 8)
	rc := m.GetDataObjectField(testAccount, key, out)
	if rc != 1 {
		t.Fatalf("get rc = %d", rc)
	}
	if out[0] != 0x2A {
		t.Errorf("out = %v", out[:1])
	}
	if m.Data[dataKey(testAccount, key)].Type != 16 {
		t.Errorf("stored type = %d", m.Data[dataKey(testAccount, key)].Type)
	}

	if rc := m.GetDataObjectField(testAccount, []byte("absent"), out); rc != host.ErrFieldNotFound.Code() {
		t.Errorf("absent rc = %d", rc)
	}

	other := bytes.Repeat([]byte{0xBB}, 20)
	if rc := m.GetDataObjectField(other, key, out); rc != host.ErrFieldNotFound.Code() {
		t.Errorf("cross-account rc = %d", rc)
	}
}

func TestDataStoreArrayKeysAreDistinct(t *testing.T) {
	m := NewMachine()
	key := []byte("holders")
	if rc := m.SetDataArrayElementField(testAccount, key, 0, []byte{16, 1}); rc != 0 {
		t.Fatal("set 0 failed")
	}
	if rc := m.SetDataArrayElementField(testAccount, key, 1, []byte{16, 2}); rc != 0 {
		t.Fatal("set 1 failed")
	}
	out := make([]byte, 4)
	if rc := m.GetDataArrayElementField(testAccount, key, 1, out); rc != 1 || out[0] != 2 {
		t.Errorf("element 1: rc=%d out=%v", rc, out)
	}
	if rc := m.GetDataObjectField(testAccount, key, out); rc != host.ErrFieldNotFound.Code() {
		t.Errorf("plain key should not alias array elements, rc = %d", rc)
	}
}

func TestKeyletsDeterministicAndDistinct(t *testing.T) {
	m := NewMachine()
	a := make([]byte, 32)
	b := make([]byte, 32)

	if rc := m.EscrowKeylet(testAccount, 7, a); rc != 32 {
		t.Fatalf("rc = %d", rc)
	}
	if rc := m.EscrowKeylet(testAccount, 7, b); rc != 32 {
		t.Fatalf("rc = %d", rc)
	}
	if !bytes.Equal(a, b) {
		t.Error("same inputs produced different keylets")
	}

	if rc := m.OfferKeylet(testAccount, 7, b); rc != 32 {
		t.Fatalf("rc = %d", rc)
	}
	if bytes.Equal(a, b) {
		t.Error("different keylet types collided")
	}

	if rc := m.EscrowKeylet(testAccount[:19], 7, a); rc != host.ErrInvalidAccount.Code() {
		t.Errorf("short account rc = %d", rc)
	}
}

func TestLineKeyletOrderIndependent(t *testing.T) {
	m := NewMachine()
	acct2 := bytes.Repeat([]byte{0xBB}, 20)
	cur := make([]byte, 20)
	a := make([]byte, 32)
	b := make([]byte, 32)

	m.LineKeylet(testAccount, acct2, cur, a)
	m.LineKeylet(acct2, testAccount, cur, b)
	if !bytes.Equal(a, b) {
		t.Error("trust line keylet depends on account order")
	}
}

func TestFloatArithmetic(t *testing.T) {
	m := NewMachine()
	a := make([]byte, 8)
	b := make([]byte, 8)
	sum := make([]byte, 8)

	if rc := m.FloatFromInt(2, a, host.RoundToNearest); rc != 8 {
		t.Fatalf("rc = %d", rc)
	}
	if rc := m.FloatFromInt(3, b, host.RoundToNearest); rc != 8 {
		t.Fatalf("rc = %d", rc)
	}
	if rc := m.FloatAdd(a, b, sum, host.RoundToNearest); rc != 8 {
		t.Fatalf("add rc = %d", rc)
	}

	five := make([]byte, 8)
	m.FloatFromInt(5, five, host.RoundToNearest)
	if rc := m.FloatCompare(sum, five); rc != 0 {
		t.Errorf("2+3 != 5, compare = %d", rc)
	}
	if rc := m.FloatCompare(a, b); rc != 2 {
		t.Errorf("2 vs 3 compare = %d, want 2 (less)", rc)
	}
	if rc := m.FloatCompare(b, a); rc != 1 {
		t.Errorf("3 vs 2 compare = %d, want 1 (greater)", rc)
	}

	zero := make([]byte, 8)
	m.FloatFromInt(0, zero, host.RoundToNearest)
	if rc := m.FloatDivide(a, zero, sum, host.RoundToNearest); rc != host.ErrInvalidFloatComputation.Code() {
		t.Errorf("divide by zero rc = %d", rc)
	}

	if rc := m.FloatAdd(a[:4], b, sum, host.RoundToNearest); rc != host.ErrInvalidFloatInput.Code() {
		t.Errorf("short input rc = %d", rc)
	}
	if rc := m.FloatAdd(a, b, sum, 9); rc != host.ErrInvalidParams.Code() {
		t.Errorf("bad rounding rc = %d", rc)
	}
}

func TestFloatSet(t *testing.T) {
	m := NewMachine()
	got := make([]byte, 8)
	want := make([]byte, 8)

	m.FloatSet(-2, 150, got, host.RoundToNearest)
	m.FloatFromInt(3, want, host.RoundToNearest)
	two := make([]byte, 8)
	m.FloatFromInt(2, two, host.RoundToNearest)
	m.FloatDivide(want, two, want, host.RoundToNearest)
	if rc := m.FloatCompare(got, want); rc != 0 {
		t.Errorf("150e-2 != 3/2, compare = %d", rc)
	}
}

func TestParams(t *testing.T) {
	m := NewMachine()
	m.FunctionParams = []Param{{Type: 2, Data: []byte{0, 0, 0, 9}}}

	out := make([]byte, 4)
	if rc := m.FunctionParam(0, 2, out); rc != 4 {
		t.Fatalf("rc = %d", rc)
	}
	if rc := m.FunctionParam(0, 6, out); rc != host.ErrInvalidParams.Code() {
		t.Errorf("type mismatch rc = %d", rc)
	}
	if rc := m.FunctionParam(1, 2, out); rc != host.ErrIndexOutOfBounds.Code() {
		t.Errorf("index rc = %d", rc)
	}
}

func TestTracesCollected(t *testing.T) {
	m := NewMachine()
	m.Trace([]byte("hello"), nil, 0)
	m.TraceNum([]byte("n"), 42)
	m.Trace([]byte("blob"), []byte{0xAB}, 1)

	if len(m.Traces) != 3 {
		t.Fatalf("traces = %v", m.Traces)
	}
	if m.Traces[0] != "hello" {
		t.Errorf("trace[0] = %q", m.Traces[0])
	}
	if m.Traces[1] != "n 42" {
		t.Errorf("trace[1] = %q", m.Traces[1])
	}
	if m.Traces[2] != "blob ab" {
		t.Errorf("trace[2] = %q", m.Traces[2])
	}
}

func TestBuiltTxnLifecycle(t *testing.T) {
	m := NewMachine()
	idx := m.BuildTxn(0)
	if idx != 0 {
		t.Fatalf("index = %d", idx)
	}
	if rc := m.AddTxnField(idx, 131076, []byte{0, 0, 0, 1}); rc != 0 {
		t.Fatalf("add rc = %d", rc)
	}
	if rc := m.EmitBuiltTxn(idx); rc != 0 {
		t.Fatalf("emit rc = %d", rc)
	}
	if rc := m.AddTxnField(idx, 131076, []byte{0}); rc != host.ErrInvalidParams.Code() {
		t.Errorf("add after emit rc = %d", rc)
	}
	if rc := m.EmitBuiltTxn(5); rc != host.ErrIndexOutOfBounds.Code() {
		t.Errorf("bad index rc = %d", rc)
	}
	if !m.Built[0].Emitted {
		t.Error("transaction not marked emitted")
	}
}

func TestSha512HalfMatchesKeylet(t *testing.T) {
	m := NewMachine()
	out := make([]byte, 32)
	if rc := m.ComputeSha512Half([]byte("abc"), out); rc != 32 {
		t.Fatalf("rc = %d", rc)
	}
	want := sha512Half([]byte("abc"))
	if !bytes.Equal(out, want[:]) {
		t.Error("digest mismatch")
	}
}

func TestBufferTooSmall(t *testing.T) {
	m := NewMachine()
	m.Tx.Fields[524289] = bytes.Repeat([]byte{1}, 20)
	out := make([]byte, 8)
	if rc := m.GetTxField(524289, out); rc != host.ErrBufferTooSmall.Code() {
		t.Errorf("rc = %d", rc)
	}
}

func TestNftLookups(t *testing.T) {
	m := NewMachine()
	nftID := bytes.Repeat([]byte{0x77}, 32)
	var issuer [20]byte
	issuer[0] = 0xCC
	m.PutNFT(testAccount, nftID, NFT{
		URI:    []byte("ipfs://x"),
		Issuer: issuer,
		Taxon:  9,
		Serial: 4,
	})

	out := make([]byte, 64)
	rc := m.GetNft(testAccount, nftID, out)
	if rc != 8 || string(out[:rc]) != "ipfs://x" {
		t.Errorf("uri rc=%d out=%q", rc, out[:max(rc, 0)])
	}
	if rc := m.GetNftIssuer(nftID, out); rc != 20 || out[0] != 0xCC {
		t.Errorf("issuer rc = %d", rc)
	}
	taxon := make([]byte, 4)
	if rc := m.GetNftTaxon(nftID, taxon); rc != 4 || binary.BigEndian.Uint32(taxon) != 9 {
		t.Errorf("taxon rc=%d v=%v", rc, taxon)
	}
	if rc := m.GetNftSerial(nftID, taxon); rc != 4 || binary.BigEndian.Uint32(taxon) != 4 {
		t.Errorf("serial rc=%d v=%v", rc, taxon)
	}
	if rc := m.GetNftFlags(bytes.Repeat([]byte{0x01}, 32)); rc != host.ErrLedgerObjNotFound.Code() {
		t.Errorf("unknown nft rc = %d", rc)
	}
}

func TestNftShortAccountKey(t *testing.T) {
	m := NewMachine()
	nftID := bytes.Repeat([]byte{0x77}, 32)
	m.PutNFT([]byte{0x01, 0x02}, nftID, NFT{URI: []byte("x")})

	if rc := m.GetNftIssuer(nftID, make([]byte, 20)); rc != host.ErrLedgerObjNotFound.Code() {
		t.Errorf("issuer rc = %d, want not found", rc)
	}
	if rc := m.GetNftTaxon(nftID, make([]byte, 4)); rc != host.ErrLedgerObjNotFound.Code() {
		t.Errorf("taxon rc = %d, want not found", rc)
	}
	if rc := m.GetNft([]byte{0x01, 0x02}, nftID, make([]byte, 8)); rc != host.ErrInvalidAccount.Code() {
		t.Errorf("uri rc = %d, want invalid account", rc)
	}
}
