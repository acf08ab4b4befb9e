package sfield

import "testing"

func TestFieldCodes(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"LedgerEntryType", LedgerEntryType.Code(), 65537},
		{"Flags", Flags.Code(), 131074},
		{"Sequence", Sequence.Code(), 131076},
		{"EmailHash", EmailHash.Code(), 262145},
		{"Balance", Balance.Code(), 393218},
		{"Account", Account.Code(), 524289},
		{"Memos", Memos, 983049},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
