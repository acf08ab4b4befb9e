package types

import "github.com/xrplf/xrpl-wasm-go/host"

// TransactionType is the 16-bit code of the TransactionType common field.
// Read little-endian from the host like every other scalar field.
type TransactionType int16

const (
	TxInvalid                           TransactionType = -1
	TxPayment                           TransactionType = 0
	TxEscrowCreate                      TransactionType = 1
	TxEscrowFinish                      TransactionType = 2
	TxAccountSet                        TransactionType = 3
	TxEscrowCancel                      TransactionType = 4
	TxSetRegularKey                     TransactionType = 5
	TxNickNameSet                       TransactionType = 6
	TxOfferCreate                       TransactionType = 7
	TxOfferCancel                       TransactionType = 8
	TxContract                          TransactionType = 9
	TxTicketCreate                      TransactionType = 10
	TxTicketCancel                      TransactionType = 11
	TxSignerListSet                     TransactionType = 12
	TxPaymentChannelCreate              TransactionType = 13
	TxPaymentChannelFund                TransactionType = 14
	TxPaymentChannelClaim               TransactionType = 15
	TxCheckCreate                       TransactionType = 16
	TxCheckCash                         TransactionType = 17
	TxCheckCancel                       TransactionType = 18
	TxDepositPreauth                    TransactionType = 19
	TxTrustSet                          TransactionType = 20
	TxAccountDelete                     TransactionType = 21
	TxSetHook                           TransactionType = 22
	TxNFTokenMint                       TransactionType = 25
	TxNFTokenBurn                       TransactionType = 26
	TxNFTokenCreateOffer                TransactionType = 27
	TxNFTokenCancelOffer                TransactionType = 28
	TxNFTokenAcceptOffer                TransactionType = 29
	TxClawback                          TransactionType = 30
	TxAMMCreate                         TransactionType = 35
	TxAMMDeposit                        TransactionType = 36
	TxAMMWithdraw                       TransactionType = 37
	TxAMMVote                           TransactionType = 38
	TxAMMBid                            TransactionType = 39
	TxAMMDelete                         TransactionType = 40
	TxXChainCreateClaimID               TransactionType = 41
	TxXChainCommit                      TransactionType = 42
	TxXChainClaim                       TransactionType = 43
	TxXChainAccountCreateCommit         TransactionType = 44
	TxXChainAddClaimAttestation         TransactionType = 45
	TxXChainAddAccountCreateAttestation TransactionType = 46
	TxXChainModifyBridge                TransactionType = 47
	TxXChainCreateBridge                TransactionType = 48
	TxDIDSet                            TransactionType = 49
	TxDIDDelete                         TransactionType = 50
	TxOracleSet                         TransactionType = 51
	TxOracleDelete                      TransactionType = 52
	TxEnableAmendment                   TransactionType = 100
	TxSetFee                            TransactionType = 101
	TxUNLModify                         TransactionType = 102
)

func (*TransactionType) FieldCapacity() int { return 2 }
func (*TransactionType) WireSize() int      { return 2 }

func (t *TransactionType) ReadField(buf []byte, n int) error {
	if n != 2 {
		return host.ErrInternal
	}
	*t = TransactionType(int16(uint16(buf[0]) | uint16(buf[1])<<8))
	return nil
}
