package ledgerobj

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func TestNftURI(t *testing.T) {
	owner := types.AccountID{1, 2, 3}
	nftID := types.Hash256{0xAA, 0xBB}
	uri := []byte("ipfs://bafy")

	host.MockT(t, "get_nft", func(c *host.Call) int32 {
		if string(c.In[0]) != string(owner[:]) {
			t.Errorf("owner = %x", c.In[0])
		}
		if string(c.In[1]) != string(nftID[:]) {
			t.Errorf("nftID = %x", c.In[1])
		}
		copy(c.Out, uri)
		return int32(len(uri))
	})

	got, err := NftURI(owner, nftID)
	if err != nil {
		t.Fatalf("NftURI: %v", err)
	}
	if string(got.Data) != string(uri) {
		t.Errorf("URI = %q, want %q", got.Data, uri)
	}
}

func TestNftURINotFound(t *testing.T) {
	host.MockT(t, "get_nft", func(c *host.Call) int32 {
		return host.ErrLedgerObjNotFound.Code()
	})

	_, err := NftURI(types.AccountID{}, types.Hash256{})
	if !errors.Is(err, host.ErrLedgerObjNotFound) {
		t.Errorf("err = %v, want ErrLedgerObjNotFound", err)
	}
}

func TestNftTokenIDParts(t *testing.T) {
	nftID := types.Hash256{0x01}
	issuer := types.AccountID{9, 8, 7}

	host.MockT(t, "get_nft_issuer", func(c *host.Call) int32 {
		copy(c.Out, issuer[:])
		return int32(len(issuer))
	})
	host.MockT(t, "get_nft_taxon", func(c *host.Call) int32 {
		binary.BigEndian.PutUint32(c.Out, 146999694)
		return 4
	})
	host.MockT(t, "get_nft_flags", func(c *host.Call) int32 {
		return 8
	})
	host.MockT(t, "get_nft_transfer_fee", func(c *host.Call) int32 {
		return 314
	})
	host.MockT(t, "get_nft_serial", func(c *host.Call) int32 {
		binary.BigEndian.PutUint32(c.Out, 12)
		return 4
	})

	gotIssuer, err := NftIssuer(nftID)
	if err != nil {
		t.Fatalf("NftIssuer: %v", err)
	}
	if gotIssuer != issuer {
		t.Errorf("issuer = %x", gotIssuer)
	}

	taxon, err := NftTaxon(nftID)
	if err != nil {
		t.Fatalf("NftTaxon: %v", err)
	}
	if taxon != 146999694 {
		t.Errorf("taxon = %d", taxon)
	}

	flags, err := NftFlags(nftID)
	if err != nil {
		t.Fatalf("NftFlags: %v", err)
	}
	if flags != 8 {
		t.Errorf("flags = %d", flags)
	}

	fee, err := NftTransferFee(nftID)
	if err != nil {
		t.Fatalf("NftTransferFee: %v", err)
	}
	if fee != 314 {
		t.Errorf("fee = %d", fee)
	}

	serial, err := NftSerial(nftID)
	if err != nil {
		t.Fatalf("NftSerial: %v", err)
	}
	if serial != 12 {
		t.Errorf("serial = %d", serial)
	}
}
