package types

import "github.com/xrplf/xrpl-wasm-go/host"

const (
	CurrencySize         = 20
	StandardCurrencySize = 3
)

// Currency is the 20-byte currency code used in IOU amounts and trust
// lines. Standard three-letter codes occupy bytes 12..15 of an otherwise
// zero buffer.
type Currency [CurrencySize]byte

// CurrencyFromStandardCode places a three-letter code such as "USD" into
// the standard-code window of a zeroed 20-byte currency.
func CurrencyFromStandardCode(code [StandardCurrencySize]byte) Currency {
	var c Currency
	copy(c[12:15], code[:])
	return c
}

func (*Currency) FieldCapacity() int { return CurrencySize }
func (*Currency) WireSize() int      { return CurrencySize }

func (c *Currency) ReadField(buf []byte, n int) error {
	if n != CurrencySize {
		return host.ErrInternal
	}
	copy(c[:], buf)
	return nil
}

func (*Currency) STI() byte { return STICurrency }

func (c *Currency) ReadData(buf []byte, n int) error { return c.ReadField(buf, n) }

func (c *Currency) AppendData(dst []byte) []byte { return append(dst, c[:]...) }

// IssueKind selects the variant carried by an Issue.
type IssueKind uint8

const (
	IssueXRP IssueKind = iota
	IssueIOU
	IssueMPT
)

// Issue identifies an asset without a value, as read from fields such as
// Asset and Asset2 on AMM entries. The wire form is 20 bytes for XRP
// (all zero), 40 bytes (currency then issuer) for an IOU, and 24 bytes
// for an MPT issuance id.
type Issue struct {
	Kind     IssueKind
	Currency Currency
	Issuer   AccountID
	MptID    MptID
}

// XRPIssue is the Issue denoting native XRP.
func XRPIssue() Issue { return Issue{Kind: IssueXRP} }

// IOUIssue builds the Issue for an issued currency.
func IOUIssue(currency Currency, issuer AccountID) Issue {
	return Issue{Kind: IssueIOU, Currency: currency, Issuer: issuer}
}

// MPTIssue builds the Issue for a multi-purpose token issuance.
func MPTIssue(id MptID) Issue {
	return Issue{Kind: IssueMPT, MptID: id}
}

func (*Issue) FieldCapacity() int { return 40 }
func (*Issue) WireSize() int      { return -1 }

func (i *Issue) ReadField(buf []byte, n int) error {
	switch n {
	case CurrencySize:
		var cur Currency
		copy(cur[:], buf)
		if cur == (Currency{}) {
			*i = Issue{Kind: IssueXRP}
			return nil
		}
		*i = Issue{Kind: IssueIOU, Currency: cur}
		return nil
	case MptIDSize:
		var id MptID
		copy(id[:], buf)
		*i = Issue{Kind: IssueMPT, MptID: id}
		return nil
	case CurrencySize + AccountIDSize:
		var out Issue
		out.Kind = IssueIOU
		copy(out.Currency[:], buf[:CurrencySize])
		copy(out.Issuer[:], buf[CurrencySize:])
		*i = out
		return nil
	default:
		return host.ErrInvalidDecoding
	}
}

// Bytes returns the wire form of the issue.
func (i Issue) Bytes() []byte {
	switch i.Kind {
	case IssueIOU:
		out := make([]byte, 0, CurrencySize+AccountIDSize)
		out = append(out, i.Currency[:]...)
		out = append(out, i.Issuer[:]...)
		return out
	case IssueMPT:
		return append([]byte(nil), i.MptID[:]...)
	default:
		return make([]byte, CurrencySize)
	}
}
