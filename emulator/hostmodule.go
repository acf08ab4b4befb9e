package emulator

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/xrplf/xrpl-wasm-go/host"
)

// HostModuleName is the import namespace contracts link against.
const HostModuleName = "host_lib"

// args wraps the raw wasm stack for one host call. Byte arguments are
// pointer/length pairs into the guest's linear memory; the slices handed
// back alias that memory, so writing to them writes the guest.
type args struct {
	mod api.Module
	s   []uint64
}

func (a args) i32(i int) int32 { return int32(a.s[i]) }
func (a args) i64(i int) int64 { return int64(a.s[i]) }

func (a args) bytes(i int) ([]byte, bool) {
	n := uint32(a.s[i+1])
	if n == 0 {
		return nil, true
	}
	return a.mod.Memory().Read(uint32(a.s[i]), n)
}

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
)

func i32s(n int) []api.ValueType {
	p := make([]api.ValueType, n)
	for i := range p {
		p[i] = i32
	}
	return p
}

func export(b wazero.HostModuleBuilder, name string, params []api.ValueType, fn func(a args) int32) {
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
			stack[0] = api.EncodeI32(fn(args{mod: mod, s: stack}))
		}), params, []api.ValueType{i32}).
		Export(name)
}

var oob = host.ErrPointerOutOfBounds.Code()

// bytesFn adapts a machine method whose arguments are byte slices in
// pointer/length pair order, with the out buffer last when outLast is
// set.
func bytesFn(fn func(bufs ...[]byte) int32, nbufs int) func(a args) int32 {
	return func(a args) int32 {
		bufs := make([][]byte, nbufs)
		for i := 0; i < nbufs; i++ {
			b, ok := a.bytes(2 * i)
			if !ok {
				return oob
			}
			bufs[i] = b
		}
		return fn(bufs...)
	}
}

// HostModule registers every host function backed by m on a "host_lib"
// module and instantiates it on rt. The returned module stays alive for
// the lifetime of the runtime.
func HostModule(ctx context.Context, rt wazero.Runtime, m *Machine) (api.Module, error) {
	b := rt.NewHostModuleBuilder(HostModuleName)

	export(b, "get_ledger_sqn", nil, func(a args) int32 { return m.GetLedgerSqn() })
	export(b, "get_parent_ledger_time", nil, func(a args) int32 { return m.GetParentLedgerTime() })
	export(b, "get_base_fee", nil, func(a args) int32 { return m.GetBaseFee() })
	export(b, "get_parent_ledger_hash", i32s(2), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetParentLedgerHash(bufs[0])
	}, 1))
	export(b, "amendment_enabled", i32s(2), bytesFn(func(bufs ...[]byte) int32 {
		return m.AmendmentEnabled(bufs[0])
	}, 1))
	export(b, "cache_ledger_obj", i32s(3), func(a args) int32 {
		keylet, ok := a.bytes(0)
		if !ok {
			return oob
		}
		return m.CacheLedgerObj(keylet, a.i32(2))
	})

	export(b, "get_tx_field", i32s(3), func(a args) int32 {
		out, ok := a.bytes(1)
		if !ok {
			return oob
		}
		return m.GetTxField(a.i32(0), out)
	})
	export(b, "get_current_ledger_obj_field", i32s(3), func(a args) int32 {
		out, ok := a.bytes(1)
		if !ok {
			return oob
		}
		return m.GetCurrentLedgerObjField(a.i32(0), out)
	})
	export(b, "get_ledger_obj_field", i32s(4), func(a args) int32 {
		out, ok := a.bytes(2)
		if !ok {
			return oob
		}
		return m.GetLedgerObjField(a.i32(0), a.i32(1), out)
	})
	export(b, "get_tx_nested_field", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetTxNestedField(bufs[0], bufs[1])
	}, 2))
	export(b, "get_current_ledger_obj_nested_field", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetCurrentLedgerObjNestedField(bufs[0], bufs[1])
	}, 2))
	export(b, "get_ledger_obj_nested_field", i32s(5), func(a args) int32 {
		loc, ok := a.bytes(1)
		if !ok {
			return oob
		}
		out, ok := a.bytes(3)
		if !ok {
			return oob
		}
		return m.GetLedgerObjNestedField(a.i32(0), loc, out)
	})
	export(b, "get_tx_array_len", i32s(1), func(a args) int32 { return m.GetTxArrayLen(a.i32(0)) })
	export(b, "get_current_ledger_obj_array_len", i32s(1), func(a args) int32 {
		return m.GetCurrentLedgerObjArrayLen(a.i32(0))
	})
	export(b, "get_ledger_obj_array_len", i32s(2), func(a args) int32 {
		return m.GetLedgerObjArrayLen(a.i32(0), a.i32(1))
	})
	export(b, "get_tx_nested_array_len", i32s(2), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetTxNestedArrayLen(bufs[0])
	}, 1))
	export(b, "get_current_ledger_obj_nested_array_len", i32s(2), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetCurrentLedgerObjNestedArrayLen(bufs[0])
	}, 1))
	export(b, "get_ledger_obj_nested_array_len", i32s(3), func(a args) int32 {
		loc, ok := a.bytes(1)
		if !ok {
			return oob
		}
		return m.GetLedgerObjNestedArrayLen(a.i32(0), loc)
	})

	export(b, "update_data", i32s(2), bytesFn(func(bufs ...[]byte) int32 {
		return m.UpdateData(bufs[0])
	}, 1))
	export(b, "compute_sha512_half", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.ComputeSha512Half(bufs[0], bufs[1])
	}, 2))
	export(b, "check_sig", i32s(6), bytesFn(func(bufs ...[]byte) int32 {
		return m.CheckSig(bufs[0], bufs[1], bufs[2])
	}, 3))

	export(b, "account_keylet", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.AccountKeylet(bufs[0], bufs[1])
	}, 2))
	export(b, "amm_keylet", i32s(6), bytesFn(func(bufs ...[]byte) int32 {
		return m.AmmKeylet(bufs[0], bufs[1], bufs[2])
	}, 3))
	export(b, "check_keylet", i32s(5), seqKeylet(m.CheckKeylet))
	export(b, "credential_keylet", i32s(8), bytesFn(func(bufs ...[]byte) int32 {
		return m.CredentialKeylet(bufs[0], bufs[1], bufs[2], bufs[3])
	}, 4))
	export(b, "delegate_keylet", i32s(6), bytesFn(func(bufs ...[]byte) int32 {
		return m.DelegateKeylet(bufs[0], bufs[1], bufs[2])
	}, 3))
	export(b, "deposit_preauth_keylet", i32s(6), bytesFn(func(bufs ...[]byte) int32 {
		return m.DepositPreauthKeylet(bufs[0], bufs[1], bufs[2])
	}, 3))
	export(b, "did_keylet", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.DidKeylet(bufs[0], bufs[1])
	}, 2))
	export(b, "escrow_keylet", i32s(5), seqKeylet(m.EscrowKeylet))
	export(b, "line_keylet", i32s(8), bytesFn(func(bufs ...[]byte) int32 {
		return m.LineKeylet(bufs[0], bufs[1], bufs[2], bufs[3])
	}, 4))
	export(b, "mpt_issuance_keylet", i32s(5), seqKeylet(m.MptIssuanceKeylet))
	export(b, "mptoken_keylet", i32s(6), bytesFn(func(bufs ...[]byte) int32 {
		return m.MptokenKeylet(bufs[0], bufs[1], bufs[2])
	}, 3))
	export(b, "nft_offer_keylet", i32s(5), seqKeylet(m.NftOfferKeylet))
	export(b, "offer_keylet", i32s(5), seqKeylet(m.OfferKeylet))
	export(b, "oracle_keylet", i32s(5), seqKeylet(m.OracleKeylet))
	export(b, "paychan_keylet", i32s(7), func(a args) int32 {
		account, ok := a.bytes(0)
		if !ok {
			return oob
		}
		destination, ok := a.bytes(2)
		if !ok {
			return oob
		}
		out, ok := a.bytes(5)
		if !ok {
			return oob
		}
		return m.PaychanKeylet(account, destination, a.i32(4), out)
	})
	export(b, "permissioned_domain_keylet", i32s(5), seqKeylet(m.PermissionedDomainKeylet))
	export(b, "signers_keylet", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.SignersKeylet(bufs[0], bufs[1])
	}, 2))
	export(b, "ticket_keylet", i32s(5), seqKeylet(m.TicketKeylet))
	export(b, "vault_keylet", i32s(5), seqKeylet(m.VaultKeylet))

	export(b, "get_nft", i32s(6), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetNft(bufs[0], bufs[1], bufs[2])
	}, 3))
	export(b, "get_nft_issuer", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetNftIssuer(bufs[0], bufs[1])
	}, 2))
	export(b, "get_nft_taxon", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetNftTaxon(bufs[0], bufs[1])
	}, 2))
	export(b, "get_nft_flags", i32s(2), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetNftFlags(bufs[0])
	}, 1))
	export(b, "get_nft_transfer_fee", i32s(2), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetNftTransferFee(bufs[0])
	}, 1))
	export(b, "get_nft_serial", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetNftSerial(bufs[0], bufs[1])
	}, 2))

	export(b, "float_from_int", []api.ValueType{i64, i32, i32, i32}, func(a args) int32 {
		out, ok := a.bytes(1)
		if !ok {
			return oob
		}
		return m.FloatFromInt(a.i64(0), out, a.i32(3))
	})
	export(b, "float_from_uint", i32s(5), func(a args) int32 {
		in, ok := a.bytes(0)
		if !ok {
			return oob
		}
		out, ok := a.bytes(2)
		if !ok {
			return oob
		}
		return m.FloatFromUint(in, out, a.i32(4))
	})
	export(b, "float_set", []api.ValueType{i32, i64, i32, i32, i32}, func(a args) int32 {
		out, ok := a.bytes(2)
		if !ok {
			return oob
		}
		return m.FloatSet(a.i32(0), a.i64(1), out, a.i32(4))
	})
	export(b, "float_compare", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.FloatCompare(bufs[0], bufs[1])
	}, 2))
	export(b, "float_add", i32s(7), floatBinop(m.FloatAdd))
	export(b, "float_subtract", i32s(7), floatBinop(m.FloatSubtract))
	export(b, "float_multiply", i32s(7), floatBinop(m.FloatMultiply))
	export(b, "float_divide", i32s(7), floatBinop(m.FloatDivide))
	export(b, "float_pow", i32s(6), floatUnop(m.FloatPow))
	export(b, "float_root", i32s(6), floatUnop(m.FloatRoot))
	export(b, "float_log", i32s(5), func(a args) int32 {
		in, ok := a.bytes(0)
		if !ok {
			return oob
		}
		out, ok := a.bytes(2)
		if !ok {
			return oob
		}
		return m.FloatLog(in, out, a.i32(4))
	})

	export(b, "trace", i32s(5), func(a args) int32 {
		msg, ok := a.bytes(0)
		if !ok {
			return oob
		}
		data, ok := a.bytes(2)
		if !ok {
			return oob
		}
		return m.Trace(msg, data, a.i32(4))
	})
	export(b, "trace_num", []api.ValueType{i32, i32, i64}, func(a args) int32 {
		msg, ok := a.bytes(0)
		if !ok {
			return oob
		}
		return m.TraceNum(msg, a.i64(2))
	})
	export(b, "trace_account", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.TraceAccount(bufs[0], bufs[1])
	}, 2))
	export(b, "trace_opaque_float", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.TraceOpaqueFloat(bufs[0], bufs[1])
	}, 2))
	export(b, "trace_amount", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.TraceAmount(bufs[0], bufs[1])
	}, 2))

	export(b, "instance_param", i32s(4), func(a args) int32 {
		out, ok := a.bytes(2)
		if !ok {
			return oob
		}
		return m.InstanceParam(a.i32(0), a.i32(1), out)
	})
	export(b, "function_param", i32s(4), func(a args) int32 {
		out, ok := a.bytes(2)
		if !ok {
			return oob
		}
		return m.FunctionParam(a.i32(0), a.i32(1), out)
	})

	export(b, "get_data_object_field", i32s(6), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetDataObjectField(bufs[0], bufs[1], bufs[2])
	}, 3))
	export(b, "get_data_nested_object_field", i32s(8), bytesFn(func(bufs ...[]byte) int32 {
		return m.GetDataNestedObjectField(bufs[0], bufs[1], bufs[2], bufs[3])
	}, 4))
	export(b, "get_data_array_element_field", i32s(7), func(a args) int32 {
		account, ok := a.bytes(0)
		if !ok {
			return oob
		}
		key, ok := a.bytes(2)
		if !ok {
			return oob
		}
		out, ok := a.bytes(5)
		if !ok {
			return oob
		}
		return m.GetDataArrayElementField(account, key, a.i32(4), out)
	})
	export(b, "get_data_nested_array_element_field", i32s(9), func(a args) int32 {
		account, ok := a.bytes(0)
		if !ok {
			return oob
		}
		key, ok := a.bytes(2)
		if !ok {
			return oob
		}
		fieldKey, ok := a.bytes(5)
		if !ok {
			return oob
		}
		out, ok := a.bytes(7)
		if !ok {
			return oob
		}
		return m.GetDataNestedArrayElementField(account, key, a.i32(4), fieldKey, out)
	})
	export(b, "set_data_object_field", i32s(6), bytesFn(func(bufs ...[]byte) int32 {
		return m.SetDataObjectField(bufs[0], bufs[1], bufs[2])
	}, 3))
	export(b, "set_data_nested_object_field", i32s(8), bytesFn(func(bufs ...[]byte) int32 {
		return m.SetDataNestedObjectField(bufs[0], bufs[1], bufs[2], bufs[3])
	}, 4))
	export(b, "set_data_array_element_field", i32s(7), func(a args) int32 {
		account, ok := a.bytes(0)
		if !ok {
			return oob
		}
		key, ok := a.bytes(2)
		if !ok {
			return oob
		}
		data, ok := a.bytes(5)
		if !ok {
			return oob
		}
		return m.SetDataArrayElementField(account, key, a.i32(4), data)
	})
	export(b, "set_data_nested_array_element_field", i32s(9), func(a args) int32 {
		account, ok := a.bytes(0)
		if !ok {
			return oob
		}
		key, ok := a.bytes(2)
		if !ok {
			return oob
		}
		fieldKey, ok := a.bytes(5)
		if !ok {
			return oob
		}
		data, ok := a.bytes(7)
		if !ok {
			return oob
		}
		return m.SetDataNestedArrayElementField(account, key, a.i32(4), fieldKey, data)
	})

	export(b, "build_txn", i32s(1), func(a args) int32 { return m.BuildTxn(a.i32(0)) })
	export(b, "add_txn_field", i32s(4), func(a args) int32 {
		data, ok := a.bytes(2)
		if !ok {
			return oob
		}
		return m.AddTxnField(a.i32(0), a.i32(1), data)
	})
	export(b, "emit_built_txn", i32s(1), func(a args) int32 { return m.EmitBuiltTxn(a.i32(0)) })
	export(b, "emit_txn", i32s(2), bytesFn(func(bufs ...[]byte) int32 {
		return m.EmitTxn(bufs[0])
	}, 1))
	export(b, "emit_event", i32s(4), bytesFn(func(bufs ...[]byte) int32 {
		return m.EmitEvent(bufs[0], bufs[1])
	}, 2))

	return b.Instantiate(ctx)
}

// seqKeylet adapts the (account, sequence, out) keylet shape: account
// pair, i32, out pair.
func seqKeylet(fn func(account []byte, sequence int32, out []byte) int32) func(a args) int32 {
	return func(a args) int32 {
		account, ok := a.bytes(0)
		if !ok {
			return oob
		}
		out, ok := a.bytes(3)
		if !ok {
			return oob
		}
		return fn(account, a.i32(2), out)
	}
}

// floatBinop adapts the (a, b, out, rounding) shape: two input pairs,
// out pair, i32 rounding mode.
func floatBinop(fn func(x, y, out []byte, roundingMode int32) int32) func(a args) int32 {
	return func(a args) int32 {
		x, ok := a.bytes(0)
		if !ok {
			return oob
		}
		y, ok := a.bytes(2)
		if !ok {
			return oob
		}
		out, ok := a.bytes(4)
		if !ok {
			return oob
		}
		return fn(x, y, out, a.i32(6))
	}
}

// floatUnop adapts the (in, n, out, rounding) shape: input pair, i32,
// out pair, i32 rounding mode.
func floatUnop(fn func(in []byte, n int32, out []byte, roundingMode int32) int32) func(a args) int32 {
	return func(a args) int32 {
		in, ok := a.bytes(0)
		if !ok {
			return oob
		}
		out, ok := a.bytes(3)
		if !ok {
			return oob
		}
		return fn(in, a.i32(2), out, a.i32(5))
	}
}
