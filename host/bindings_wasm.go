//go:build wasm

package host

import "unsafe"

// Raw imports from the host's "host_lib" namespace. Pointer/length pairs
// reference the guest's linear memory; the host validates both before
// touching it.

//go:wasmimport host_lib get_ledger_sqn
func hostGetLedgerSqn() int32

//go:wasmimport host_lib get_parent_ledger_time
func hostGetParentLedgerTime() int32

//go:wasmimport host_lib get_parent_ledger_hash
func hostGetParentLedgerHash(outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_base_fee
func hostGetBaseFee() int32

//go:wasmimport host_lib amendment_enabled
func hostAmendmentEnabled(ptr unsafe.Pointer, n uint32) int32

//go:wasmimport host_lib cache_ledger_obj
func hostCacheLedgerObj(keyletPtr unsafe.Pointer, keyletLen uint32, cacheNum int32) int32

//go:wasmimport host_lib get_tx_field
func hostGetTxField(field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_field
func hostGetCurrentLedgerObjField(field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_field
func hostGetLedgerObjField(cacheNum int32, field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_tx_nested_field
func hostGetTxNestedField(locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_nested_field
func hostGetCurrentLedgerObjNestedField(locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_nested_field
func hostGetLedgerObjNestedField(cacheNum int32, locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_tx_array_len
func hostGetTxArrayLen(field int32) int32

//go:wasmimport host_lib get_current_ledger_obj_array_len
func hostGetCurrentLedgerObjArrayLen(field int32) int32

//go:wasmimport host_lib get_ledger_obj_array_len
func hostGetLedgerObjArrayLen(cacheNum int32, field int32) int32

//go:wasmimport host_lib get_tx_nested_array_len
func hostGetTxNestedArrayLen(locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_nested_array_len
func hostGetCurrentLedgerObjNestedArrayLen(locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_nested_array_len
func hostGetLedgerObjNestedArrayLen(cacheNum int32, locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib update_data
func hostUpdateData(dataPtr unsafe.Pointer, dataLen uint32) int32

//go:wasmimport host_lib compute_sha512_half
func hostComputeSha512Half(dataPtr unsafe.Pointer, dataLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib check_sig
func hostCheckSig(msgPtr unsafe.Pointer, msgLen uint32, sigPtr unsafe.Pointer, sigLen uint32, keyPtr unsafe.Pointer, keyLen uint32) int32

//go:wasmimport host_lib account_keylet
func hostAccountKeylet(acctPtr unsafe.Pointer, acctLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib amm_keylet
func hostAmmKeylet(i1Ptr unsafe.Pointer, i1Len uint32, i2Ptr unsafe.Pointer, i2Len uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib check_keylet
func hostCheckKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib credential_keylet
func hostCredentialKeylet(subjPtr unsafe.Pointer, subjLen uint32, issPtr unsafe.Pointer, issLen uint32, typePtr unsafe.Pointer, typeLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib delegate_keylet
func hostDelegateKeylet(acctPtr unsafe.Pointer, acctLen uint32, authPtr unsafe.Pointer, authLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib deposit_preauth_keylet
func hostDepositPreauthKeylet(acctPtr unsafe.Pointer, acctLen uint32, authPtr unsafe.Pointer, authLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib did_keylet
func hostDidKeylet(acctPtr unsafe.Pointer, acctLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib escrow_keylet
func hostEscrowKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib line_keylet
func hostLineKeylet(a1Ptr unsafe.Pointer, a1Len uint32, a2Ptr unsafe.Pointer, a2Len uint32, curPtr unsafe.Pointer, curLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib mpt_issuance_keylet
func hostMptIssuanceKeylet(issPtr unsafe.Pointer, issLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib mptoken_keylet
func hostMptokenKeylet(idPtr unsafe.Pointer, idLen uint32, holderPtr unsafe.Pointer, holderLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib nft_offer_keylet
func hostNftOfferKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib offer_keylet
func hostOfferKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib oracle_keylet
func hostOracleKeylet(acctPtr unsafe.Pointer, acctLen uint32, documentID int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib paychan_keylet
func hostPaychanKeylet(acctPtr unsafe.Pointer, acctLen uint32, dstPtr unsafe.Pointer, dstLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib permissioned_domain_keylet
func hostPermissionedDomainKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib signers_keylet
func hostSignersKeylet(acctPtr unsafe.Pointer, acctLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib ticket_keylet
func hostTicketKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib vault_keylet
func hostVaultKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft
func hostGetNft(acctPtr unsafe.Pointer, acctLen uint32, idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_issuer
func hostGetNftIssuer(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_taxon
func hostGetNftTaxon(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_flags
func hostGetNftFlags(idPtr unsafe.Pointer, idLen uint32) int32

//go:wasmimport host_lib get_nft_transfer_fee
func hostGetNftTransferFee(idPtr unsafe.Pointer, idLen uint32) int32

//go:wasmimport host_lib get_nft_serial
func hostGetNftSerial(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib float_from_int
func hostFloatFromInt(in int64, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_from_uint
func hostFloatFromUint(inPtr unsafe.Pointer, inLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_set
func hostFloatSet(exponent int32, mantissa int64, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_compare
func hostFloatCompare(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32) int32

//go:wasmimport host_lib float_add
func hostFloatAdd(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_subtract
func hostFloatSubtract(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_multiply
func hostFloatMultiply(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_divide
func hostFloatDivide(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_pow
func hostFloatPow(inPtr unsafe.Pointer, inLen uint32, n int32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_root
func hostFloatRoot(inPtr unsafe.Pointer, inLen uint32, n int32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_log
func hostFloatLog(inPtr unsafe.Pointer, inLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib trace
func hostTrace(msgPtr unsafe.Pointer, msgLen uint32, dataPtr unsafe.Pointer, dataLen uint32, asHex int32) int32

//go:wasmimport host_lib trace_num
func hostTraceNum(msgPtr unsafe.Pointer, msgLen uint32, number int64) int32

//go:wasmimport host_lib trace_account
func hostTraceAccount(msgPtr unsafe.Pointer, msgLen uint32, acctPtr unsafe.Pointer, acctLen uint32) int32

//go:wasmimport host_lib trace_opaque_float
func hostTraceOpaqueFloat(msgPtr unsafe.Pointer, msgLen uint32, fPtr unsafe.Pointer, fLen uint32) int32

//go:wasmimport host_lib trace_amount
func hostTraceAmount(msgPtr unsafe.Pointer, msgLen uint32, amtPtr unsafe.Pointer, amtLen uint32) int32

//go:wasmimport host_lib instance_param
func hostInstanceParam(index int32, stTypeID int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib function_param
func hostFunctionParam(index int32, stTypeID int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_data_object_field
func hostGetDataObjectField(acctPtr unsafe.Pointer, acctLen uint32, keyPtr unsafe.Pointer, keyLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_data_nested_object_field
func hostGetDataNestedObjectField(acctPtr unsafe.Pointer, acctLen uint32, nestedPtr unsafe.Pointer, nestedLen uint32, keyPtr unsafe.Pointer, keyLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_data_array_element_field
func hostGetDataArrayElementField(acctPtr unsafe.Pointer, acctLen uint32, keyPtr unsafe.Pointer, keyLen uint32, index int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_data_nested_array_element_field
func hostGetDataNestedArrayElementField(acctPtr unsafe.Pointer, acctLen uint32, keyPtr unsafe.Pointer, keyLen uint32, index int32, fieldKeyPtr unsafe.Pointer, fieldKeyLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib set_data_object_field
func hostSetDataObjectField(acctPtr unsafe.Pointer, acctLen uint32, keyPtr unsafe.Pointer, keyLen uint32, dataPtr unsafe.Pointer, dataLen uint32) int32

//go:wasmimport host_lib set_data_nested_object_field
func hostSetDataNestedObjectField(acctPtr unsafe.Pointer, acctLen uint32, nestedPtr unsafe.Pointer, nestedLen uint32, keyPtr unsafe.Pointer, keyLen uint32, dataPtr unsafe.Pointer, dataLen uint32) int32

//go:wasmimport host_lib set_data_array_element_field
func hostSetDataArrayElementField(acctPtr unsafe.Pointer, acctLen uint32, keyPtr unsafe.Pointer, keyLen uint32, index int32, dataPtr unsafe.Pointer, dataLen uint32) int32

//go:wasmimport host_lib set_data_nested_array_element_field
func hostSetDataNestedArrayElementField(acctPtr unsafe.Pointer, acctLen uint32, keyPtr unsafe.Pointer, keyLen uint32, index int32, fieldKeyPtr unsafe.Pointer, fieldKeyLen uint32, dataPtr unsafe.Pointer, dataLen uint32) int32

//go:wasmimport host_lib build_txn
func hostBuildTxn(txnType int32) int32

//go:wasmimport host_lib add_txn_field
func hostAddTxnField(index int32, field int32, dataPtr unsafe.Pointer, dataLen uint32) int32

//go:wasmimport host_lib emit_built_txn
func hostEmitBuiltTxn(index int32) int32

//go:wasmimport host_lib emit_txn
func hostEmitTxn(txnPtr unsafe.Pointer, txnLen uint32) int32

//go:wasmimport host_lib emit_event
func hostEmitEvent(namePtr unsafe.Pointer, nameLen uint32, dataPtr unsafe.Pointer, dataLen uint32) int32

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

func blen(b []byte) uint32 { return uint32(len(b)) }

func GetLedgerSqn() int32        { return hostGetLedgerSqn() }
func GetParentLedgerTime() int32 { return hostGetParentLedgerTime() }
func GetBaseFee() int32          { return hostGetBaseFee() }

func GetParentLedgerHash(out []byte) int32 {
	return hostGetParentLedgerHash(ptr(out), blen(out))
}

func AmendmentEnabled(amendment []byte) int32 {
	return hostAmendmentEnabled(ptr(amendment), blen(amendment))
}

func CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	return hostCacheLedgerObj(ptr(keylet), blen(keylet), cacheNum)
}

func GetTxField(field int32, out []byte) int32 {
	return hostGetTxField(field, ptr(out), blen(out))
}

func GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return hostGetCurrentLedgerObjField(field, ptr(out), blen(out))
}

func GetLedgerObjField(cacheNum, field int32, out []byte) int32 {
	return hostGetLedgerObjField(cacheNum, field, ptr(out), blen(out))
}

func GetTxNestedField(loc, out []byte) int32 {
	return hostGetTxNestedField(ptr(loc), blen(loc), ptr(out), blen(out))
}

func GetCurrentLedgerObjNestedField(loc, out []byte) int32 {
	return hostGetCurrentLedgerObjNestedField(ptr(loc), blen(loc), ptr(out), blen(out))
}

func GetLedgerObjNestedField(cacheNum int32, loc, out []byte) int32 {
	return hostGetLedgerObjNestedField(cacheNum, ptr(loc), blen(loc), ptr(out), blen(out))
}

func GetTxArrayLen(field int32) int32 {
	return hostGetTxArrayLen(field)
}

func GetCurrentLedgerObjArrayLen(field int32) int32 {
	return hostGetCurrentLedgerObjArrayLen(field)
}

func GetLedgerObjArrayLen(cacheNum, field int32) int32 {
	return hostGetLedgerObjArrayLen(cacheNum, field)
}

func GetTxNestedArrayLen(loc []byte) int32 {
	return hostGetTxNestedArrayLen(ptr(loc), blen(loc))
}

func GetCurrentLedgerObjNestedArrayLen(loc []byte) int32 {
	return hostGetCurrentLedgerObjNestedArrayLen(ptr(loc), blen(loc))
}

func GetLedgerObjNestedArrayLen(cacheNum int32, loc []byte) int32 {
	return hostGetLedgerObjNestedArrayLen(cacheNum, ptr(loc), blen(loc))
}

func UpdateData(data []byte) int32 {
	return hostUpdateData(ptr(data), blen(data))
}

func ComputeSha512Half(data, out []byte) int32 {
	return hostComputeSha512Half(ptr(data), blen(data), ptr(out), blen(out))
}

func CheckSig(message, signature, pubkey []byte) int32 {
	return hostCheckSig(ptr(message), blen(message), ptr(signature), blen(signature), ptr(pubkey), blen(pubkey))
}

func AccountKeylet(account, out []byte) int32 {
	return hostAccountKeylet(ptr(account), blen(account), ptr(out), blen(out))
}

func AmmKeylet(issue1, issue2, out []byte) int32 {
	return hostAmmKeylet(ptr(issue1), blen(issue1), ptr(issue2), blen(issue2), ptr(out), blen(out))
}

func CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostCheckKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func CredentialKeylet(subject, issuer, credType, out []byte) int32 {
	return hostCredentialKeylet(ptr(subject), blen(subject), ptr(issuer), blen(issuer), ptr(credType), blen(credType), ptr(out), blen(out))
}

func DelegateKeylet(account, authorize, out []byte) int32 {
	return hostDelegateKeylet(ptr(account), blen(account), ptr(authorize), blen(authorize), ptr(out), blen(out))
}

func DepositPreauthKeylet(account, authorize, out []byte) int32 {
	return hostDepositPreauthKeylet(ptr(account), blen(account), ptr(authorize), blen(authorize), ptr(out), blen(out))
}

func DidKeylet(account, out []byte) int32 {
	return hostDidKeylet(ptr(account), blen(account), ptr(out), blen(out))
}

func EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostEscrowKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func LineKeylet(account1, account2, currency, out []byte) int32 {
	return hostLineKeylet(ptr(account1), blen(account1), ptr(account2), blen(account2), ptr(currency), blen(currency), ptr(out), blen(out))
}

func MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	return hostMptIssuanceKeylet(ptr(issuer), blen(issuer), sequence, ptr(out), blen(out))
}

func MptokenKeylet(mptID, holder, out []byte) int32 {
	return hostMptokenKeylet(ptr(mptID), blen(mptID), ptr(holder), blen(holder), ptr(out), blen(out))
}

func NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostNftOfferKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostOfferKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	return hostOracleKeylet(ptr(account), blen(account), documentID, ptr(out), blen(out))
}

func PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	return hostPaychanKeylet(ptr(account), blen(account), ptr(destination), blen(destination), sequence, ptr(out), blen(out))
}

func PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostPermissionedDomainKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func SignersKeylet(account, out []byte) int32 {
	return hostSignersKeylet(ptr(account), blen(account), ptr(out), blen(out))
}

func TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostTicketKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostVaultKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func GetNft(account, nftID, out []byte) int32 {
	return hostGetNft(ptr(account), blen(account), ptr(nftID), blen(nftID), ptr(out), blen(out))
}

func GetNftIssuer(nftID, out []byte) int32 {
	return hostGetNftIssuer(ptr(nftID), blen(nftID), ptr(out), blen(out))
}

func GetNftTaxon(nftID, out []byte) int32 {
	return hostGetNftTaxon(ptr(nftID), blen(nftID), ptr(out), blen(out))
}

func GetNftFlags(nftID []byte) int32 {
	return hostGetNftFlags(ptr(nftID), blen(nftID))
}

func GetNftTransferFee(nftID []byte) int32 {
	return hostGetNftTransferFee(ptr(nftID), blen(nftID))
}

func GetNftSerial(nftID, out []byte) int32 {
	return hostGetNftSerial(ptr(nftID), blen(nftID), ptr(out), blen(out))
}

func FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	return hostFloatFromInt(value, ptr(out), blen(out), roundingMode)
}

func FloatFromUint(in, out []byte, roundingMode int32) int32 {
	return hostFloatFromUint(ptr(in), blen(in), ptr(out), blen(out), roundingMode)
}

func FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	return hostFloatSet(exponent, mantissa, ptr(out), blen(out), roundingMode)
}

func FloatCompare(a, b []byte) int32 {
	return hostFloatCompare(ptr(a), blen(a), ptr(b), blen(b))
}

func FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return hostFloatAdd(ptr(a), blen(a), ptr(b), blen(b), ptr(out), blen(out), roundingMode)
}

func FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return hostFloatSubtract(ptr(a), blen(a), ptr(b), blen(b), ptr(out), blen(out), roundingMode)
}

func FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return hostFloatMultiply(ptr(a), blen(a), ptr(b), blen(b), ptr(out), blen(out), roundingMode)
}

func FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	return hostFloatDivide(ptr(a), blen(a), ptr(b), blen(b), ptr(out), blen(out), roundingMode)
}

func FloatPow(in []byte, n int32, out []byte, roundingMode int32) int32 {
	return hostFloatPow(ptr(in), blen(in), n, ptr(out), blen(out), roundingMode)
}

func FloatRoot(in []byte, n int32, out []byte, roundingMode int32) int32 {
	return hostFloatRoot(ptr(in), blen(in), n, ptr(out), blen(out), roundingMode)
}

func FloatLog(in, out []byte, roundingMode int32) int32 {
	return hostFloatLog(ptr(in), blen(in), ptr(out), blen(out), roundingMode)
}

func Trace(msg, data []byte, asHex int32) int32 {
	return hostTrace(ptr(msg), blen(msg), ptr(data), blen(data), asHex)
}

func TraceNum(msg []byte, number int64) int32 {
	return hostTraceNum(ptr(msg), blen(msg), number)
}

func TraceAccount(msg, account []byte) int32 {
	return hostTraceAccount(ptr(msg), blen(msg), ptr(account), blen(account))
}

func TraceOpaqueFloat(msg, opaqueFloat []byte) int32 {
	return hostTraceOpaqueFloat(ptr(msg), blen(msg), ptr(opaqueFloat), blen(opaqueFloat))
}

func TraceAmount(msg, amount []byte) int32 {
	return hostTraceAmount(ptr(msg), blen(msg), ptr(amount), blen(amount))
}

func InstanceParam(index, stTypeID int32, out []byte) int32 {
	return hostInstanceParam(index, stTypeID, ptr(out), blen(out))
}

func FunctionParam(index, stTypeID int32, out []byte) int32 {
	return hostFunctionParam(index, stTypeID, ptr(out), blen(out))
}

func GetDataObjectField(account, key, out []byte) int32 {
	return hostGetDataObjectField(ptr(account), blen(account), ptr(key), blen(key), ptr(out), blen(out))
}

func GetDataNestedObjectField(account, nested, key, out []byte) int32 {
	return hostGetDataNestedObjectField(ptr(account), blen(account), ptr(nested), blen(nested), ptr(key), blen(key), ptr(out), blen(out))
}

func GetDataArrayElementField(account, key []byte, index int32, out []byte) int32 {
	return hostGetDataArrayElementField(ptr(account), blen(account), ptr(key), blen(key), index, ptr(out), blen(out))
}

func GetDataNestedArrayElementField(account, key []byte, index int32, fieldKey, out []byte) int32 {
	return hostGetDataNestedArrayElementField(ptr(account), blen(account), ptr(key), blen(key), index, ptr(fieldKey), blen(fieldKey), ptr(out), blen(out))
}

func SetDataObjectField(account, key, data []byte) int32 {
	return hostSetDataObjectField(ptr(account), blen(account), ptr(key), blen(key), ptr(data), blen(data))
}

func SetDataNestedObjectField(account, nested, key, data []byte) int32 {
	return hostSetDataNestedObjectField(ptr(account), blen(account), ptr(nested), blen(nested), ptr(key), blen(key), ptr(data), blen(data))
}

func SetDataArrayElementField(account, key []byte, index int32, data []byte) int32 {
	return hostSetDataArrayElementField(ptr(account), blen(account), ptr(key), blen(key), index, ptr(data), blen(data))
}

func SetDataNestedArrayElementField(account, key []byte, index int32, fieldKey, data []byte) int32 {
	return hostSetDataNestedArrayElementField(ptr(account), blen(account), ptr(key), blen(key), index, ptr(fieldKey), blen(fieldKey), ptr(data), blen(data))
}

func BuildTxn(txnType int32) int32 {
	return hostBuildTxn(txnType)
}

func AddTxnField(index, field int32, data []byte) int32 {
	return hostAddTxnField(index, field, ptr(data), blen(data))
}

func EmitBuiltTxn(index int32) int32 {
	return hostEmitBuiltTxn(index)
}

func EmitTxn(txn []byte) int32 {
	return hostEmitTxn(ptr(txn), blen(txn))
}

func EmitEvent(name, data []byte) int32 {
	return hostEmitEvent(ptr(name), blen(name), ptr(data), blen(data))
}
