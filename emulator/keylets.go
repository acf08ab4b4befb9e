package emulator

import (
	"encoding/binary"

	"github.com/xrplf/xrpl-wasm-go/host"
)

// Keylet namespace bytes. One per keylet type so distinct types never
// collide on identical parameters.
const (
	nsAccount            = 0x61
	nsAmm                = 0x41
	nsCheck              = 0x43
	nsCredential         = 0x44
	nsDelegate           = 0x45
	nsDepositPreauth     = 0x70
	nsDid                = 0x49
	nsEscrow             = 0x75
	nsLine               = 0x72
	nsMptIssuance        = 0x7E
	nsMptoken            = 0x74
	nsNftOffer           = 0x71
	nsOffer              = 0x6F
	nsOracle             = 0x52
	nsPaychan            = 0x78
	nsPermissionedDomain = 0x6D
	nsSigners            = 0x53
	nsTicket             = 0x54
	nsVault              = 0x56
)

func keyletOut(out []byte, ns byte, parts ...[]byte) int32 {
	buf := []byte{ns}
	for _, p := range parts {
		buf = append(buf, p...)
	}
	h := sha512Half(buf)
	return writeOut(out, h[:])
}

func seqBytes(sequence int32) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(sequence))
}

func checkAccount(account []byte) int32 {
	if len(account) != 20 {
		return host.ErrInvalidAccount.Code()
	}
	return 0
}

func (m *Machine) AccountKeylet(account, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsAccount, account)
}

func (m *Machine) AmmKeylet(issue1, issue2, out []byte) int32 {
	if len(issue1) == 0 || len(issue2) == 0 {
		return host.ErrInvalidParams.Code()
	}
	return keyletOut(out, nsAmm, issue1, issue2)
}

func (m *Machine) CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsCheck, account, seqBytes(sequence))
}

func (m *Machine) CredentialKeylet(subject, issuer, credType, out []byte) int32 {
	if rc := checkAccount(subject); rc < 0 {
		return rc
	}
	if rc := checkAccount(issuer); rc < 0 {
		return rc
	}
	return keyletOut(out, nsCredential, subject, issuer, credType)
}

func (m *Machine) DelegateKeylet(account, authorize, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	if rc := checkAccount(authorize); rc < 0 {
		return rc
	}
	return keyletOut(out, nsDelegate, account, authorize)
}

func (m *Machine) DepositPreauthKeylet(account, authorize, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	if rc := checkAccount(authorize); rc < 0 {
		return rc
	}
	return keyletOut(out, nsDepositPreauth, account, authorize)
}

func (m *Machine) DidKeylet(account, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsDid, account)
}

func (m *Machine) EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsEscrow, account, seqBytes(sequence))
}

func (m *Machine) LineKeylet(account1, account2, currency, out []byte) int32 {
	if rc := checkAccount(account1); rc < 0 {
		return rc
	}
	if rc := checkAccount(account2); rc < 0 {
		return rc
	}
	if len(currency) != 20 {
		return host.ErrInvalidParams.Code()
	}
	// The trust line key is order-independent in the real ledger; sort
	// the accounts so both orderings land on the same key.
	lo, hi := account1, account2
	for i := 0; i < 20; i++ {
		if lo[i] != hi[i] {
			if lo[i] > hi[i] {
				lo, hi = hi, lo
			}
			break
		}
	}
	return keyletOut(out, nsLine, lo, hi, currency)
}

func (m *Machine) MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(issuer); rc < 0 {
		return rc
	}
	return keyletOut(out, nsMptIssuance, issuer, seqBytes(sequence))
}

func (m *Machine) MptokenKeylet(mptID, holder, out []byte) int32 {
	if len(mptID) != 24 {
		return host.ErrInvalidParams.Code()
	}
	if rc := checkAccount(holder); rc < 0 {
		return rc
	}
	return keyletOut(out, nsMptoken, mptID, holder)
}

func (m *Machine) NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsNftOffer, account, seqBytes(sequence))
}

func (m *Machine) OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsOffer, account, seqBytes(sequence))
}

func (m *Machine) OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsOracle, account, seqBytes(documentID))
}

func (m *Machine) PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	if rc := checkAccount(destination); rc < 0 {
		return rc
	}
	return keyletOut(out, nsPaychan, account, destination, seqBytes(sequence))
}

func (m *Machine) PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsPermissionedDomain, account, seqBytes(sequence))
}

func (m *Machine) SignersKeylet(account, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsSigners, account)
}

func (m *Machine) TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsTicket, account, seqBytes(sequence))
}

func (m *Machine) VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return keyletOut(out, nsVault, account, seqBytes(sequence))
}
