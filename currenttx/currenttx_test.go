package currenttx

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/sfield"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func escrowFinishFixture(t *testing.T) {
	t.Helper()
	host.MockT(t, "get_tx_field", func(c *host.Call) int32 {
		switch c.I32[0] {
		case sfield.TransactionType.Code():
			binary.LittleEndian.PutUint16(c.Out, 2)
			return 2
		case sfield.Account.Code():
			c.Out[0] = 0x11
			return 20
		case sfield.Owner.Code():
			c.Out[0] = 0x22
			return 20
		case sfield.OfferSequence.Code():
			binary.LittleEndian.PutUint32(c.Out, 7)
			return 4
		case sfield.Fee.Code():
			binary.BigEndian.PutUint64(c.Out, 12)
			c.Out[0] |= 0x40
			return 8
		case sfield.Condition.Code(), sfield.Fulfillment.Code():
			return host.ErrFieldNotFound.Code()
		default:
			return host.ErrFieldNotFound.Code()
		}
	})
}

func TestTransactionType(t *testing.T) {
	escrowFinishFixture(t)

	tt, err := TransactionType()
	if err != nil {
		t.Fatal(err)
	}
	if tt != types.TxEscrowFinish {
		t.Errorf("type = %d, want EscrowFinish", tt)
	}
}

func TestCommonFields(t *testing.T) {
	escrowFinishFixture(t)

	account, err := Account()
	if err != nil {
		t.Fatal(err)
	}
	if account[0] != 0x11 {
		t.Errorf("account = %v", account)
	}

	fee, err := Fee()
	if err != nil {
		t.Fatal(err)
	}
	if fee.Kind != types.AmountXRP || fee.Drops != 12 {
		t.Errorf("fee = %+v", fee)
	}

	_, ok, err := Flags()
	if err != nil || ok {
		t.Errorf("flags: ok=%v err=%v, want absent", ok, err)
	}
}

func TestEscrowFinishFields(t *testing.T) {
	escrowFinishFixture(t)
	tx := CurrentEscrowFinish()

	owner, err := tx.Owner()
	if err != nil {
		t.Fatal(err)
	}
	if owner[0] != 0x22 {
		t.Errorf("owner = %v", owner)
	}

	seq, err := tx.OfferSequence()
	if err != nil {
		t.Fatal(err)
	}
	if seq != 7 {
		t.Errorf("offer sequence = %d, want 7", seq)
	}

	_, ok, err := tx.Condition()
	if err != nil || ok {
		t.Errorf("condition: ok=%v err=%v, want absent", ok, err)
	}

	_, err = GetField(sfield.Condition)
	if !errors.Is(err, host.ErrFieldNotFound) {
		t.Errorf("required condition err = %v, want ErrFieldNotFound", err)
	}
}

func TestMemoCount(t *testing.T) {
	host.MockT(t, "get_tx_array_len", host.ReturnCode(2))
	n, err := MemoCount()
	if err != nil || n != 2 {
		t.Errorf("n=%d err=%v", n, err)
	}
}
