//go:build !wasm

package host

// Off-wasm builds route every host function through the mock registry so
// guest code and its tests run as ordinary Go. Unmocked functions return
// ErrInternal.

func GetLedgerSqn() int32 {
	return dispatch(&Call{Name: "get_ledger_sqn"})
}

func GetParentLedgerTime() int32 {
	return dispatch(&Call{Name: "get_parent_ledger_time"})
}

func GetBaseFee() int32 {
	return dispatch(&Call{Name: "get_base_fee"})
}

func GetParentLedgerHash(out []byte) int32 {
	return dispatch(&Call{Name: "get_parent_ledger_hash", Out: out})
}

func AmendmentEnabled(amendment []byte) int32 {
	return dispatch(&Call{Name: "amendment_enabled", In: [][]byte{amendment}})
}

func CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	return dispatch(&Call{Name: "cache_ledger_obj", In: [][]byte{keylet}, I32: []int32{cacheNum}})
}

func GetTxField(field int32, out []byte) int32 {
	return dispatch(&Call{Name: "get_tx_field", I32: []int32{field}, Out: out})
}

func GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return dispatch(&Call{Name: "get_current_ledger_obj_field", I32: []int32{field}, Out: out})
}

func GetLedgerObjField(cacheNum, field int32, out []byte) int32 {
	return dispatch(&Call{Name: "get_ledger_obj_field", I32: []int32{cacheNum, field}, Out: out})
}

func GetTxNestedField(loc, out []byte) int32 {
	return dispatch(&Call{Name: "get_tx_nested_field", In: [][]byte{loc}, Out: out})
}

func GetCurrentLedgerObjNestedField(loc, out []byte) int32 {
	return dispatch(&Call{Name: "get_current_ledger_obj_nested_field", In: [][]byte{loc}, Out: out})
}

func GetLedgerObjNestedField(cacheNum int32, loc, out []byte) int32 {
	return dispatch(&Call{Name: "get_ledger_obj_nested_field", I32: []int32{cacheNum}, In: [][]byte{loc}, Out: out})
}

func GetTxArrayLen(field int32) int32 {
	return dispatch(&Call{Name: "get_tx_array_len", I32: []int32{field}})
}

func GetCurrentLedgerObjArrayLen(field int32) int32 {
	return dispatch(&Call{Name: "get_current_ledger_obj_array_len", I32: []int32{field}})
}

func GetLedgerObjArrayLen(cacheNum, field int32) int32 {
	return dispatch(&Call{Name: "get_ledger_obj_array_len", I32: []int32{cacheNum, field}})
}

func GetTxNestedArrayLen(loc []byte) int32 {
	return dispatch(&Call{Name: "get_tx_nested_array_len", In: [][]byte{loc}})
}

func GetCurrentLedgerObjNestedArrayLen(loc []byte) int32 {
	return dispatch(&Call{Name: "get_current_ledger_obj_nested_array_len", In: [][]byte{loc}})
}

func GetLedgerObjNestedArrayLen(cacheNum int32, loc []byte) int32 {
	return dispatch(&Call{Name: "get_ledger_obj_nested_array_len", I32: []int32{cacheNum}, In: [][]byte{loc}})
}

func UpdateData(data []byte) int32 {
	return dispatch(&Call{Name: "update_data", In: [][]byte{data}})
}

func ComputeSha512Half(data, out []byte) int32 {
	return dispatch(&Call{Name: "compute_sha512_half", In: [][]byte{data}, Out: out})
}

func CheckSig(message, signature, pubkey []byte) int32 {
	return dispatch(&Call{Name: "check_sig", In: [][]byte{message, signature, pubkey}})
}

func AccountKeylet(account, out []byte) int32 {
	return dispatch(&Call{Name: "account_keylet", In: [][]byte{account}, Out: out})
}

func AmmKeylet(issue1, issue2, out []byte) int32 {
	return dispatch(&Call{Name: "amm_keylet", In: [][]byte{issue1, issue2}, Out: out})
}

func CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "check_keylet", In: [][]byte{account}, I32: []int32{sequence}, Out: out})
}

func CredentialKeylet(subject, issuer, credType, out []byte) int32 {
	return dispatch(&Call{Name: "credential_keylet", In: [][]byte{subject, issuer, credType}, Out: out})
}

func DelegateKeylet(account, authorize, out []byte) int32 {
	return dispatch(&Call{Name: "delegate_keylet", In: [][]byte{account, authorize}, Out: out})
}

func DepositPreauthKeylet(account, authorize, out []byte) int32 {
	return dispatch(&Call{Name: "deposit_preauth_keylet", In: [][]byte{account, authorize}, Out: out})
}

func DidKeylet(account, out []byte) int32 {
	return dispatch(&Call{Name: "did_keylet", In: [][]byte{account}, Out: out})
}

func EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "escrow_keylet", In: [][]byte{account}, I32: []int32{sequence}, Out: out})
}

func LineKeylet(account1, account2, currency, out []byte) int32 {
	return dispatch(&Call{Name: "line_keylet", In: [][]byte{account1, account2, currency}, Out: out})
}

func MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "mpt_issuance_keylet", In: [][]byte{issuer}, I32: []int32{sequence}, Out: out})
}

func MptokenKeylet(mptID, holder, out []byte) int32 {
	return dispatch(&Call{Name: "mptoken_keylet", In: [][]byte{mptID, holder}, Out: out})
}

func NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "nft_offer_keylet", In: [][]byte{account}, I32: []int32{sequence}, Out: out})
}

func OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "offer_keylet", In: [][]byte{account}, I32: []int32{sequence}, Out: out})
}

func OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	return dispatch(&Call{Name: "oracle_keylet", In: [][]byte{account}, I32: []int32{documentID}, Out: out})
}

func PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "paychan_keylet", In: [][]byte{account, destination}, I32: []int32{sequence}, Out: out})
}

func PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "permissioned_domain_keylet", In: [][]byte{account}, I32: []int32{sequence}, Out: out})
}

func SignersKeylet(account, out []byte) int32 {
	return dispatch(&Call{Name: "signers_keylet", In: [][]byte{account}, Out: out})
}

func TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "ticket_keylet", In: [][]byte{account}, I32: []int32{sequence}, Out: out})
}

func VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	return dispatch(&Call{Name: "vault_keylet", In: [][]byte{account}, I32: []int32{sequence}, Out: out})
}

func GetNft(account, nftID, out []byte) int32 {
	return dispatch(&Call{Name: "get_nft", In: [][]byte{account, nftID}, Out: out})
}

func GetNftIssuer(nftID, out []byte) int32 {
	return dispatch(&Call{Name: "get_nft_issuer", In: [][]byte{nftID}, Out: out})
}

func GetNftTaxon(nftID, out []byte) int32 {
	return dispatch(&Call{Name: "get_nft_taxon", In: [][]byte{nftID}, Out: out})
}

func GetNftFlags(nftID []byte) int32 {
	return dispatch(&Call{Name: "get_nft_flags", In: [][]byte{nftID}})
}

func GetNftTransferFee(nftID []byte) int32 {
	return dispatch(&Call{Name: "get_nft_transfer_fee", In: [][]byte{nftID}})
}

func GetNftSerial(nftID, out []byte) int32 {
	return dispatch(&Call{Name: "get_nft_serial", In: [][]byte{nftID}, Out: out})
}

func FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_from_int", I64: value, I32: []int32{roundingMode}, Out: out})
}

func FloatFromUint(in, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_from_uint", In: [][]byte{in}, I32: []int32{roundingMode}, Out: out})
}

func FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_set", I32: []int32{exponent, roundingMode}, I64: mantissa, Out: out})
}

func FloatCompare(a, b []byte) int32 {
	return dispatch(&Call{Name: "float_compare", In: [][]byte{a, b}})
}

func FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_add", In: [][]byte{a, b}, I32: []int32{roundingMode}, Out: out})
}

func FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_subtract", In: [][]byte{a, b}, I32: []int32{roundingMode}, Out: out})
}

func FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_multiply", In: [][]byte{a, b}, I32: []int32{roundingMode}, Out: out})
}

func FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_divide", In: [][]byte{a, b}, I32: []int32{roundingMode}, Out: out})
}

func FloatPow(in []byte, n int32, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_pow", In: [][]byte{in}, I32: []int32{n, roundingMode}, Out: out})
}

func FloatRoot(in []byte, n int32, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_root", In: [][]byte{in}, I32: []int32{n, roundingMode}, Out: out})
}

func FloatLog(in, out []byte, roundingMode int32) int32 {
	return dispatch(&Call{Name: "float_log", In: [][]byte{in}, I32: []int32{roundingMode}, Out: out})
}

func Trace(msg, data []byte, asHex int32) int32 {
	return dispatch(&Call{Name: "trace", In: [][]byte{msg, data}, I32: []int32{asHex}})
}

func TraceNum(msg []byte, number int64) int32 {
	return dispatch(&Call{Name: "trace_num", In: [][]byte{msg}, I64: number})
}

func TraceAccount(msg, account []byte) int32 {
	return dispatch(&Call{Name: "trace_account", In: [][]byte{msg, account}})
}

func TraceOpaqueFloat(msg, opaqueFloat []byte) int32 {
	return dispatch(&Call{Name: "trace_opaque_float", In: [][]byte{msg, opaqueFloat}})
}

func TraceAmount(msg, amount []byte) int32 {
	return dispatch(&Call{Name: "trace_amount", In: [][]byte{msg, amount}})
}

func InstanceParam(index, stTypeID int32, out []byte) int32 {
	return dispatch(&Call{Name: "instance_param", I32: []int32{index, stTypeID}, Out: out})
}

func FunctionParam(index, stTypeID int32, out []byte) int32 {
	return dispatch(&Call{Name: "function_param", I32: []int32{index, stTypeID}, Out: out})
}

func GetDataObjectField(account, key, out []byte) int32 {
	return dispatch(&Call{Name: "get_data_object_field", In: [][]byte{account, key}, Out: out})
}

func GetDataNestedObjectField(account, nested, key, out []byte) int32 {
	return dispatch(&Call{Name: "get_data_nested_object_field", In: [][]byte{account, nested, key}, Out: out})
}

func GetDataArrayElementField(account, key []byte, index int32, out []byte) int32 {
	return dispatch(&Call{Name: "get_data_array_element_field", In: [][]byte{account, key}, I32: []int32{index}, Out: out})
}

func GetDataNestedArrayElementField(account, key []byte, index int32, fieldKey, out []byte) int32 {
	return dispatch(&Call{Name: "get_data_nested_array_element_field", In: [][]byte{account, key, fieldKey}, I32: []int32{index}, Out: out})
}

func SetDataObjectField(account, key, data []byte) int32 {
	return dispatch(&Call{Name: "set_data_object_field", In: [][]byte{account, key, data}})
}

func SetDataNestedObjectField(account, nested, key, data []byte) int32 {
	return dispatch(&Call{Name: "set_data_nested_object_field", In: [][]byte{account, nested, key, data}})
}

func SetDataArrayElementField(account, key []byte, index int32, data []byte) int32 {
	return dispatch(&Call{Name: "set_data_array_element_field", In: [][]byte{account, key, data}, I32: []int32{index}})
}

func SetDataNestedArrayElementField(account, key []byte, index int32, fieldKey, data []byte) int32 {
	return dispatch(&Call{Name: "set_data_nested_array_element_field", In: [][]byte{account, key, fieldKey, data}, I32: []int32{index}})
}

func BuildTxn(txnType int32) int32 {
	return dispatch(&Call{Name: "build_txn", I32: []int32{txnType}})
}

func AddTxnField(index, field int32, data []byte) int32 {
	return dispatch(&Call{Name: "add_txn_field", I32: []int32{index, field}, In: [][]byte{data}})
}

func EmitBuiltTxn(index int32) int32 {
	return dispatch(&Call{Name: "emit_built_txn", I32: []int32{index}})
}

func EmitTxn(txn []byte) int32 {
	return dispatch(&Call{Name: "emit_txn", In: [][]byte{txn}})
}

func EmitEvent(name, data []byte) int32 {
	return dispatch(&Call{Name: "emit_event", In: [][]byte{name, data}})
}
