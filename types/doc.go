// Package types defines the value types that cross the XRPL host boundary.
//
// Every type here is a plain, caller-owned value: fixed-size byte-array
// newtypes (AccountID, the Hash* family, CurrencyCode, PublicKey),
// length-tracked buffers (Blob, Signature, Fulfillment) and the three-way
// TokenAmount union that covers the ledger's Amount wire slot.
//
// # Wire decoding
//
// Types that can be read out of a raw host field buffer implement FieldCodec
// on their pointer receiver. The generic getters in the ledgerobj and
// currenttx packages use the Codec constraint to instantiate one decode path
// per type at compile time; there is no reflection and no central type
// switch.
//
// # Amounts
//
// TokenAmount carries exactly one of three encodings that share the 48-byte
// STAmount slot: XRP drops, an MPT quantity plus issuance ID, or an IOU
// opaque float plus currency and issuer. The IOU float is deliberately
// opaque: arithmetic on it must go through the host float functions (see the
// float package) so results stay consensus-exact.
package types
