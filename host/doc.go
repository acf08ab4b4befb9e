// Package host is the only layer that talks to the XRPL host ABI.
//
// Every host function is exposed as an exported Go function taking []byte
// buffers. Two implementations exist behind build tags:
//
//   - On wasm targets each function forwards to a //go:wasmimport declaration
//     in the "host_lib" namespace, passing the slice's data pointer and
//     length across the sandbox boundary.
//   - On every other target each function dispatches through a mock registry
//     so unit tests can script host behavior per function name. Unmocked
//     functions return -1 (the internal-error code).
//
// # Call contract
//
// A non-negative return is the number of bytes written into the out buffer
// (or a count, or a slot number, depending on the call class). A negative
// return is an error code; Error maps the full code space. A call never
// writes partial usable data into a too-small buffer.
//
// Higher layers (ledgerobj, currenttx, event, contractdata, ...) own all
// interpretation of the bytes; this package moves them and nothing else.
package host
