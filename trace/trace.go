// Package trace writes debug output to the host trace log. Tracing is a
// development aid; hosts may rate-limit or drop it, so callers must not
// depend on it for control flow.
package trace

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

// Repr selects how trace data bytes are rendered by the host.
type Repr int32

const (
	AsUTF8 Repr = 0
	AsHex  Repr = 1
)

// Log writes a plain message.
func Log(msg string) error {
	return host.CheckResult(host.Trace([]byte(msg), nil, int32(AsUTF8)))
}

// Data writes a message together with a data payload rendered per repr.
func Data(msg string, data []byte, repr Repr) error {
	return host.CheckResult(host.Trace([]byte(msg), data, int32(repr)))
}

// Num writes a message together with a signed number.
func Num(msg string, number int64) error {
	return host.CheckResult(host.TraceNum([]byte(msg), number))
}

// Account writes a message together with an account in its address form.
func Account(msg string, account types.AccountID) error {
	return host.CheckResult(host.TraceAccount([]byte(msg), account[:]))
}

// Float writes a message together with an opaque float, decoded by the
// host.
func Float(msg string, f types.OpaqueFloat) error {
	return host.CheckResult(host.TraceOpaqueFloat([]byte(msg), f[:]))
}

// Amount writes a message together with a token amount in its 48-byte
// form.
func Amount(msg string, amount types.TokenAmount) error {
	b, n := amount.STAmountBytes()
	return host.CheckResult(host.TraceAmount([]byte(msg), b[:n]))
}
