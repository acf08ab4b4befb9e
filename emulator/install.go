package emulator

import (
	"testing"

	"github.com/xrplf/xrpl-wasm-go/host"
)

// handlers maps every host function name to an adapter unpacking the
// mock call into the corresponding Machine method. Argument packing
// mirrors the host package's non-wasm bindings.
func (m *Machine) handlers() map[string]host.MockFunc {
	return map[string]host.MockFunc{
		"get_ledger_sqn":         func(c *host.Call) int32 { return m.GetLedgerSqn() },
		"get_parent_ledger_time": func(c *host.Call) int32 { return m.GetParentLedgerTime() },
		"get_base_fee":           func(c *host.Call) int32 { return m.GetBaseFee() },
		"get_parent_ledger_hash": func(c *host.Call) int32 { return m.GetParentLedgerHash(c.Out) },
		"amendment_enabled":      func(c *host.Call) int32 { return m.AmendmentEnabled(c.In[0]) },
		"cache_ledger_obj":       func(c *host.Call) int32 { return m.CacheLedgerObj(c.In[0], c.I32[0]) },

		"get_tx_field":                            func(c *host.Call) int32 { return m.GetTxField(c.I32[0], c.Out) },
		"get_current_ledger_obj_field":            func(c *host.Call) int32 { return m.GetCurrentLedgerObjField(c.I32[0], c.Out) },
		"get_ledger_obj_field":                    func(c *host.Call) int32 { return m.GetLedgerObjField(c.I32[0], c.I32[1], c.Out) },
		"get_tx_nested_field":                     func(c *host.Call) int32 { return m.GetTxNestedField(c.In[0], c.Out) },
		"get_current_ledger_obj_nested_field":     func(c *host.Call) int32 { return m.GetCurrentLedgerObjNestedField(c.In[0], c.Out) },
		"get_ledger_obj_nested_field":             func(c *host.Call) int32 { return m.GetLedgerObjNestedField(c.I32[0], c.In[0], c.Out) },
		"get_tx_array_len":                        func(c *host.Call) int32 { return m.GetTxArrayLen(c.I32[0]) },
		"get_current_ledger_obj_array_len":        func(c *host.Call) int32 { return m.GetCurrentLedgerObjArrayLen(c.I32[0]) },
		"get_ledger_obj_array_len":                func(c *host.Call) int32 { return m.GetLedgerObjArrayLen(c.I32[0], c.I32[1]) },
		"get_tx_nested_array_len":                 func(c *host.Call) int32 { return m.GetTxNestedArrayLen(c.In[0]) },
		"get_current_ledger_obj_nested_array_len": func(c *host.Call) int32 { return m.GetCurrentLedgerObjNestedArrayLen(c.In[0]) },
		"get_ledger_obj_nested_array_len":         func(c *host.Call) int32 { return m.GetLedgerObjNestedArrayLen(c.I32[0], c.In[0]) },

		"update_data":         func(c *host.Call) int32 { return m.UpdateData(c.In[0]) },
		"compute_sha512_half": func(c *host.Call) int32 { return m.ComputeSha512Half(c.In[0], c.Out) },
		"check_sig":           func(c *host.Call) int32 { return m.CheckSig(c.In[0], c.In[1], c.In[2]) },

		"account_keylet":             func(c *host.Call) int32 { return m.AccountKeylet(c.In[0], c.Out) },
		"amm_keylet":                 func(c *host.Call) int32 { return m.AmmKeylet(c.In[0], c.In[1], c.Out) },
		"check_keylet":               func(c *host.Call) int32 { return m.CheckKeylet(c.In[0], c.I32[0], c.Out) },
		"credential_keylet":          func(c *host.Call) int32 { return m.CredentialKeylet(c.In[0], c.In[1], c.In[2], c.Out) },
		"delegate_keylet":            func(c *host.Call) int32 { return m.DelegateKeylet(c.In[0], c.In[1], c.Out) },
		"deposit_preauth_keylet":     func(c *host.Call) int32 { return m.DepositPreauthKeylet(c.In[0], c.In[1], c.Out) },
		"did_keylet":                 func(c *host.Call) int32 { return m.DidKeylet(c.In[0], c.Out) },
		"escrow_keylet":              func(c *host.Call) int32 { return m.EscrowKeylet(c.In[0], c.I32[0], c.Out) },
		"line_keylet":                func(c *host.Call) int32 { return m.LineKeylet(c.In[0], c.In[1], c.In[2], c.Out) },
		"mpt_issuance_keylet":        func(c *host.Call) int32 { return m.MptIssuanceKeylet(c.In[0], c.I32[0], c.Out) },
		"mptoken_keylet":             func(c *host.Call) int32 { return m.MptokenKeylet(c.In[0], c.In[1], c.Out) },
		"nft_offer_keylet":           func(c *host.Call) int32 { return m.NftOfferKeylet(c.In[0], c.I32[0], c.Out) },
		"offer_keylet":               func(c *host.Call) int32 { return m.OfferKeylet(c.In[0], c.I32[0], c.Out) },
		"oracle_keylet":              func(c *host.Call) int32 { return m.OracleKeylet(c.In[0], c.I32[0], c.Out) },
		"paychan_keylet":             func(c *host.Call) int32 { return m.PaychanKeylet(c.In[0], c.In[1], c.I32[0], c.Out) },
		"permissioned_domain_keylet": func(c *host.Call) int32 { return m.PermissionedDomainKeylet(c.In[0], c.I32[0], c.Out) },
		"signers_keylet":             func(c *host.Call) int32 { return m.SignersKeylet(c.In[0], c.Out) },
		"ticket_keylet":              func(c *host.Call) int32 { return m.TicketKeylet(c.In[0], c.I32[0], c.Out) },
		"vault_keylet":               func(c *host.Call) int32 { return m.VaultKeylet(c.In[0], c.I32[0], c.Out) },

		"get_nft":              func(c *host.Call) int32 { return m.GetNft(c.In[0], c.In[1], c.Out) },
		"get_nft_issuer":       func(c *host.Call) int32 { return m.GetNftIssuer(c.In[0], c.Out) },
		"get_nft_taxon":        func(c *host.Call) int32 { return m.GetNftTaxon(c.In[0], c.Out) },
		"get_nft_flags":        func(c *host.Call) int32 { return m.GetNftFlags(c.In[0]) },
		"get_nft_transfer_fee": func(c *host.Call) int32 { return m.GetNftTransferFee(c.In[0]) },
		"get_nft_serial":       func(c *host.Call) int32 { return m.GetNftSerial(c.In[0], c.Out) },

		"float_from_int":  func(c *host.Call) int32 { return m.FloatFromInt(c.I64, c.Out, c.I32[0]) },
		"float_from_uint": func(c *host.Call) int32 { return m.FloatFromUint(c.In[0], c.Out, c.I32[0]) },
		"float_set":       func(c *host.Call) int32 { return m.FloatSet(c.I32[0], c.I64, c.Out, c.I32[1]) },
		"float_compare":   func(c *host.Call) int32 { return m.FloatCompare(c.In[0], c.In[1]) },
		"float_add":       func(c *host.Call) int32 { return m.FloatAdd(c.In[0], c.In[1], c.Out, c.I32[0]) },
		"float_subtract":  func(c *host.Call) int32 { return m.FloatSubtract(c.In[0], c.In[1], c.Out, c.I32[0]) },
		"float_multiply":  func(c *host.Call) int32 { return m.FloatMultiply(c.In[0], c.In[1], c.Out, c.I32[0]) },
		"float_divide":    func(c *host.Call) int32 { return m.FloatDivide(c.In[0], c.In[1], c.Out, c.I32[0]) },
		"float_pow":       func(c *host.Call) int32 { return m.FloatPow(c.In[0], c.I32[0], c.Out, c.I32[1]) },
		"float_root":      func(c *host.Call) int32 { return m.FloatRoot(c.In[0], c.I32[0], c.Out, c.I32[1]) },
		"float_log":       func(c *host.Call) int32 { return m.FloatLog(c.In[0], c.Out, c.I32[0]) },

		"trace":              func(c *host.Call) int32 { return m.Trace(c.In[0], c.In[1], c.I32[0]) },
		"trace_num":          func(c *host.Call) int32 { return m.TraceNum(c.In[0], c.I64) },
		"trace_account":      func(c *host.Call) int32 { return m.TraceAccount(c.In[0], c.In[1]) },
		"trace_opaque_float": func(c *host.Call) int32 { return m.TraceOpaqueFloat(c.In[0], c.In[1]) },
		"trace_amount":       func(c *host.Call) int32 { return m.TraceAmount(c.In[0], c.In[1]) },

		"instance_param": func(c *host.Call) int32 { return m.InstanceParam(c.I32[0], c.I32[1], c.Out) },
		"function_param": func(c *host.Call) int32 { return m.FunctionParam(c.I32[0], c.I32[1], c.Out) },

		"get_data_object_field":               func(c *host.Call) int32 { return m.GetDataObjectField(c.In[0], c.In[1], c.Out) },
		"get_data_nested_object_field":        func(c *host.Call) int32 { return m.GetDataNestedObjectField(c.In[0], c.In[1], c.In[2], c.Out) },
		"get_data_array_element_field":        func(c *host.Call) int32 { return m.GetDataArrayElementField(c.In[0], c.In[1], c.I32[0], c.Out) },
		"get_data_nested_array_element_field": func(c *host.Call) int32 { return m.GetDataNestedArrayElementField(c.In[0], c.In[1], c.I32[0], c.In[2], c.Out) },
		"set_data_object_field":               func(c *host.Call) int32 { return m.SetDataObjectField(c.In[0], c.In[1], c.In[2]) },
		"set_data_nested_object_field":        func(c *host.Call) int32 { return m.SetDataNestedObjectField(c.In[0], c.In[1], c.In[2], c.In[3]) },
		"set_data_array_element_field":        func(c *host.Call) int32 { return m.SetDataArrayElementField(c.In[0], c.In[1], c.I32[0], c.In[2]) },
		"set_data_nested_array_element_field": func(c *host.Call) int32 { return m.SetDataNestedArrayElementField(c.In[0], c.In[1], c.I32[0], c.In[2], c.In[3]) },

		"build_txn":      func(c *host.Call) int32 { return m.BuildTxn(c.I32[0]) },
		"add_txn_field":  func(c *host.Call) int32 { return m.AddTxnField(c.I32[0], c.I32[1], c.In[0]) },
		"emit_built_txn": func(c *host.Call) int32 { return m.EmitBuiltTxn(c.I32[0]) },
		"emit_txn":       func(c *host.Call) int32 { return m.EmitTxn(c.In[0]) },
		"emit_event":     func(c *host.Call) int32 { return m.EmitEvent(c.In[0], c.In[1]) },
	}
}

// Install registers every host function against this machine in the mock
// registry and removes them when the test finishes. Guest packages then
// execute against the machine with no wasm involved.
func (m *Machine) Install(t *testing.T) {
	t.Helper()
	for name, fn := range m.handlers() {
		host.MockT(t, name, fn)
	}
}
