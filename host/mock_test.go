package host

import "testing"

func TestDispatchUnmocked(t *testing.T) {
	ClearAllMocks()
	if got := GetLedgerSqn(); got != int32(ErrInternal) {
		t.Errorf("unmocked GetLedgerSqn() = %d, want %d", got, int32(ErrInternal))
	}
}

func TestMockReceivesArguments(t *testing.T) {
	var seen Call
	MockT(t, "get_ledger_obj_field", func(c *Call) int32 {
		seen = *c
		copy(c.Out, []byte{0x61, 0x00, 0x00, 0x00})
		return 4
	})

	out := make([]byte, 4)
	if got := GetLedgerObjField(3, 131076, out); got != 4 {
		t.Fatalf("GetLedgerObjField = %d, want 4", got)
	}
	if seen.Name != "get_ledger_obj_field" {
		t.Errorf("name = %q", seen.Name)
	}
	if len(seen.I32) != 2 || seen.I32[0] != 3 || seen.I32[1] != 131076 {
		t.Errorf("i32 args = %v", seen.I32)
	}
	if out[0] != 0x61 {
		t.Errorf("out = %v", out)
	}
}

func TestReturnBytes(t *testing.T) {
	MockT(t, "account_keylet", ReturnBytes(make([]byte, 32)))

	out := make([]byte, 32)
	if got := AccountKeylet(make([]byte, 20), out); got != 32 {
		t.Errorf("AccountKeylet = %d, want 32", got)
	}

	small := make([]byte, 8)
	if got := AccountKeylet(make([]byte, 20), small); got != int32(ErrBufferTooSmall) {
		t.Errorf("small buffer = %d, want %d", got, int32(ErrBufferTooSmall))
	}
}

func TestClearMock(t *testing.T) {
	SetMock("get_base_fee", ReturnCode(10))
	if got := GetBaseFee(); got != 10 {
		t.Fatalf("mocked GetBaseFee = %d", got)
	}
	ClearMock("get_base_fee")
	if got := GetBaseFee(); got != int32(ErrInternal) {
		t.Errorf("cleared GetBaseFee = %d, want %d", got, int32(ErrInternal))
	}
}
