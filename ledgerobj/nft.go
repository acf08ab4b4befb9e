package ledgerobj

import (
	"encoding/binary"

	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// nftURICapacity bounds the URI field of a minted token.
const nftURICapacity = 256

// NftURI returns the URI of the token identified by nftID in owner's
// NFT pages.
func NftURI(owner types.AccountID, nftID types.Hash256) (types.Blob, error) {
	buf := make([]byte, nftURICapacity)
	rc := host.GetNft(owner[:], nftID[:], buf)
	if err := host.CheckResult(rc); err != nil {
		return types.Blob{}, err
	}
	return types.Blob{Data: buf[:rc]}, nil
}

// NftIssuer returns the minting account encoded in the token ID.
func NftIssuer(nftID types.Hash256) (types.AccountID, error) {
	var issuer types.AccountID
	rc := host.GetNftIssuer(nftID[:], issuer[:])
	if err := host.CheckResultBytes(rc, types.AccountIDSize); err != nil {
		return types.AccountID{}, err
	}
	return issuer, nil
}

// NftTaxon returns the taxon encoded in the token ID.
func NftTaxon(nftID types.Hash256) (uint32, error) {
	var buf [4]byte
	rc := host.GetNftTaxon(nftID[:], buf[:])
	if err := host.CheckResultBytes(rc, len(buf)); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// NftFlags returns the flags encoded in the token ID.
func NftFlags(nftID types.Hash256) (uint16, error) {
	rc := host.GetNftFlags(nftID[:])
	if err := host.CheckResult(rc); err != nil {
		return 0, err
	}
	return uint16(rc), nil
}

// NftTransferFee returns the transfer fee encoded in the token ID.
func NftTransferFee(nftID types.Hash256) (uint16, error) {
	rc := host.GetNftTransferFee(nftID[:])
	if err := host.CheckResult(rc); err != nil {
		return 0, err
	}
	return uint16(rc), nil
}

// NftSerial returns the sequence number encoded in the token ID.
func NftSerial(nftID types.Hash256) (uint32, error) {
	var buf [4]byte
	rc := host.GetNftSerial(nftID[:], buf[:])
	if err := host.CheckResultBytes(rc, len(buf)); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
