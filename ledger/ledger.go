// Package ledger reads the current ledger header: sequence, close time,
// parent hash, base fee, and amendment status.
package ledger

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// Sequence returns the sequence number of the ledger the transaction is
// executing in.
func Sequence() (uint32, error) {
	rc := host.GetLedgerSqn()
	if rc < 0 {
		return 0, host.FromCode(rc)
	}
	return uint32(rc), nil
}

// ParentTime returns the close time of the parent ledger, in seconds
// since the Ripple epoch.
func ParentTime() (uint32, error) {
	rc := host.GetParentLedgerTime()
	if rc < 0 {
		return 0, host.FromCode(rc)
	}
	return uint32(rc), nil
}

// BaseFee returns the ledger's base fee in drops.
func BaseFee() (uint32, error) {
	rc := host.GetBaseFee()
	if rc < 0 {
		return 0, host.FromCode(rc)
	}
	return uint32(rc), nil
}

// ParentHash returns the hash of the parent ledger.
func ParentHash() (types.Hash256, error) {
	var h types.Hash256
	buf := make([]byte, len(h))
	if err := host.CheckResultBytes(host.GetParentLedgerHash(buf), len(h)); err != nil {
		return h, err
	}
	copy(h[:], buf)
	return h, nil
}

// AmendmentEnabled reports whether the amendment identified by hash is
// active in the current ledger.
func AmendmentEnabled(amendment types.Hash256) (bool, error) {
	rc := host.AmendmentEnabled(amendment[:])
	if rc < 0 {
		return false, host.FromCode(rc)
	}
	return rc == 1, nil
}
