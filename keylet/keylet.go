// Package keylet computes ledger-entry keylets through the host.
//
// Every function returns the 32-byte key identifying a ledger object,
// or the host error when the inputs do not name a computable key.
package keylet

import (
	"github.com/xrplf/xrpl-wasm-go/host"
	"github.com/xrplf/xrpl-wasm-go/types"
)

func keylet(rc int32, buf []byte) (types.Hash256, error) {
	var k types.Hash256
	if err := host.CheckResultBytes(rc, len(k)); err != nil {
		return k, err
	}
	copy(k[:], buf)
	return k, nil
}

// Account returns the AccountRoot keylet for account.
func Account(account types.AccountID) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.AccountKeylet(account[:], buf), buf)
}

// Amm returns the AMM keylet for the asset pair.
func Amm(issue1, issue2 types.Issue) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.AmmKeylet(issue1.Bytes(), issue2.Bytes(), buf), buf)
}

// Check returns the Check keylet for the check created by account with
// the given sequence number.
func Check(account types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.CheckKeylet(account[:], int32(sequence), buf), buf)
}

// Credential returns the Credential keylet for subject, issuer and
// credential type.
func Credential(subject, issuer types.AccountID, credType []byte) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.CredentialKeylet(subject[:], issuer[:], credType, buf), buf)
}

// Delegate returns the Delegate keylet.
func Delegate(account, authorize types.AccountID) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.DelegateKeylet(account[:], authorize[:], buf), buf)
}

// DepositPreauth returns the DepositPreauth keylet.
func DepositPreauth(account, authorize types.AccountID) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.DepositPreauthKeylet(account[:], authorize[:], buf), buf)
}

// Did returns the DID keylet for account.
func Did(account types.AccountID) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.DidKeylet(account[:], buf), buf)
}

// Escrow returns the Escrow keylet for the escrow created by owner with
// the given sequence number.
func Escrow(owner types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.EscrowKeylet(owner[:], int32(sequence), buf), buf)
}

// Line returns the RippleState keylet for the trust line between the
// two accounts in the given currency.
func Line(account1, account2 types.AccountID, currency types.Currency) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.LineKeylet(account1[:], account2[:], currency[:], buf), buf)
}

// MptIssuance returns the MPTokenIssuance keylet.
func MptIssuance(issuer types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.MptIssuanceKeylet(issuer[:], int32(sequence), buf), buf)
}

// Mptoken returns the MPToken keylet for holder's position in the
// issuance.
func Mptoken(id types.MptID, holder types.AccountID) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.MptokenKeylet(id[:], holder[:], buf), buf)
}

// NftOffer returns the NFTokenOffer keylet.
func NftOffer(account types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.NftOfferKeylet(account[:], int32(sequence), buf), buf)
}

// Offer returns the Offer keylet.
func Offer(account types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.OfferKeylet(account[:], int32(sequence), buf), buf)
}

// Oracle returns the Oracle keylet for account's price oracle document.
func Oracle(account types.AccountID, documentID uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.OracleKeylet(account[:], int32(documentID), buf), buf)
}

// Paychan returns the PayChannel keylet.
func Paychan(account, destination types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.PaychanKeylet(account[:], destination[:], int32(sequence), buf), buf)
}

// PermissionedDomain returns the PermissionedDomain keylet.
func PermissionedDomain(account types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.PermissionedDomainKeylet(account[:], int32(sequence), buf), buf)
}

// Signers returns the SignerList keylet for account.
func Signers(account types.AccountID) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.SignersKeylet(account[:], buf), buf)
}

// Ticket returns the Ticket keylet.
func Ticket(account types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.TicketKeylet(account[:], int32(sequence), buf), buf)
}

// Vault returns the Vault keylet.
func Vault(account types.AccountID, sequence uint32) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.VaultKeylet(account[:], int32(sequence), buf), buf)
}

// Sha512Half returns the first 32 bytes of the SHA-512 digest of data,
// the hash function ledger keys are built from.
func Sha512Half(data []byte) (types.Hash256, error) {
	buf := make([]byte, 32)
	return keylet(host.ComputeSha512Half(data, buf), buf)
}

// CheckSig reports whether signature is a valid signature of message by
// the given public key.
func CheckSig(message []byte, signature types.Signature, pubkey types.PublicKey) (bool, error) {
	rc := host.CheckSig(message, signature.Data[:signature.Len], pubkey[:])
	if rc < 0 {
		return false, host.FromCode(rc)
	}
	return rc == 1, nil
}
