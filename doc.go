// Package xrplwasm is the root of a Go SDK for writing XRPL smart
// contracts that compile to WebAssembly.
//
// A contract is a wasm module exporting an entry function (by
// convention "finish") that returns an int32: a positive value lets the
// transaction proceed, zero or a negative host error code blocks it.
// Inside the entry function the contract talks to the ledger through
// host functions imported from the "host_lib" module.
//
// # Package layout
//
//	xrpl-wasm-go/
//	├── host/         Raw host bindings and the shared error codes
//	├── types/        Field codecs: hashes, accounts, amounts, floats
//	├── sfield/       Serialized field table with typed field handles
//	├── locator/      Packed paths for nested and array field access
//	├── currenttx/    Fields of the transaction being executed
//	├── ledgerobj/    Current and slot-cached ledger entries, NFTs
//	├── ledger/       Ledger header accessors
//	├── keylet/       Ledger entry key derivation
//	├── float/        Opaque host float arithmetic
//	├── contractdata/ Persistent per-account key/value store
//	├── params/       Instance and invocation parameters
//	├── txbuilder/    Building and emitting transactions
//	├── event/        Contract event emission
//	├── trace/        Debug tracing through the host
//	├── emulator/     Pure Go host for tests and local runs
//	└── cmd/run/      CLI that executes contract wasm locally
//
// # Quick start
//
// The smallest contract logs a message and releases the escrow:
//
//	package main
//
//	import "github.com/xrplf/xrpl-wasm-go/trace"
//
//	func finish() int32 {
//	    _ = trace.Log("Hello World!")
//	    return 1
//	}
//
//	func main() {}
//
// with the export declared in a wasm-only file:
//
//	//go:wasmexport finish
//	func finishExport() int32 { return finish() }
//
// Build with GOOS=wasip1 GOARCH=wasm, then run it against an emulated
// ledger with cmd/run, or test it natively: every host binding has a
// non-wasm fallback that dispatches to a per-test mock registry, and
// emulator.Machine installs a complete in-memory host behind it.
//
// # Host errors
//
// Host functions report failure as negative int32 codes. The typed
// wrappers in this SDK convert them to host.Error values; a contract
// that wants to short-circuit returns the code from its entry function.
package xrplwasm
