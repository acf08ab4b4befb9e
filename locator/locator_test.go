package locator

import (
	"bytes"
	"testing"
)

func TestPackLittleEndian(t *testing.T) {
	l := New()
	if !l.Pack(0x01020304) {
		t.Fatal("pack failed")
	}
	if !bytes.Equal(l.Bytes(), []byte{0x04, 0x03, 0x02, 0x01}) {
		t.Errorf("bytes = %v", l.Bytes())
	}
}

func TestPackCapacity(t *testing.T) {
	l := New()
	for i := 0; i < 16; i++ {
		if !l.Pack(int32(i)) {
			t.Fatalf("pack %d failed", i)
		}
	}
	if l.Len() != BufferSize {
		t.Fatalf("len = %d, want %d", l.Len(), BufferSize)
	}
	if l.Pack(99) {
		t.Error("17th pack succeeded")
	}
	if l.Len() != BufferSize {
		t.Errorf("len after failed pack = %d, want unchanged %d", l.Len(), BufferSize)
	}
}

func TestRepackLast(t *testing.T) {
	l := New()
	l.Pack(10)
	l.Pack(20)
	l.Pack(30)
	before := l.Len()

	if !l.RepackLast(40) {
		t.Fatal("repack failed")
	}
	if l.Len() != before {
		t.Errorf("len changed: %d -> %d", before, l.Len())
	}
	want := []byte{10, 0, 0, 0, 20, 0, 0, 0, 40, 0, 0, 0}
	if !bytes.Equal(l.Bytes(), want) {
		t.Errorf("bytes = %v, want %v", l.Bytes(), want)
	}
}

func TestRepackLastEmpty(t *testing.T) {
	l := New()
	if l.RepackLast(1) {
		t.Error("repack on empty locator succeeded")
	}
}

func TestNewWithSlot(t *testing.T) {
	l := NewWithSlot(7)
	if l.Len() != 1 {
		t.Fatalf("len = %d, want 1", l.Len())
	}
	l.Pack(0x0B000001)
	got := l.Bytes()
	if got[0] != 7 {
		t.Errorf("slot byte = %d, want 7", got[0])
	}
	if !bytes.Equal(got[1:], []byte{0x01, 0x00, 0x00, 0x0B}) {
		t.Errorf("segment = %v", got[1:])
	}
}
