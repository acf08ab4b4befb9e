package emulator

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
)

// DefaultEntry is the export a contract exposes as its entry point.
const DefaultEntry = "finish"

// Runner executes guest contract binaries against a Machine.
type Runner struct {
	runtime wazero.Runtime
	machine *Machine
}

// NewRunner creates a wazero runtime with the machine's host module
// already instantiated. Close the runner to release the runtime.
func NewRunner(ctx context.Context, m *Machine) (*Runner, error) {
	rt := wazero.NewRuntime(ctx)
	if _, err := HostModule(ctx, rt, m); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("instantiate %s: %w", HostModuleName, err)
	}
	return &Runner{runtime: rt, machine: m}, nil
}

// Machine returns the fixture the runner executes against.
func (r *Runner) Machine() *Machine { return r.machine }

// Run instantiates wasmBytes and invokes the named entry export, which
// must take no parameters and return one i32. It returns that result.
func (r *Runner) Run(ctx context.Context, wasmBytes []byte, entry string) (int32, error) {
	if entry == "" {
		entry = DefaultEntry
	}

	compiled, err := r.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return 0, fmt.Errorf("compile contract: %w", err)
	}
	defer compiled.Close(ctx)

	mod, err := r.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return 0, fmt.Errorf("instantiate contract: %w", err)
	}
	defer mod.Close(ctx)

	fn := mod.ExportedFunction(entry)
	if fn == nil {
		return 0, fmt.Errorf("contract exports no %q function", entry)
	}

	Logger().Debug("invoking contract",
		zap.String("entry", entry),
		zap.Int("size", len(wasmBytes)))

	results, err := fn.Call(ctx)
	if err != nil {
		return 0, fmt.Errorf("call %s: %w", entry, err)
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("%s returned %d results, want 1", entry, len(results))
	}

	rc := int32(results[0])
	Logger().Debug("contract finished",
		zap.Int32("result", rc),
		zap.Int("traces", len(r.machine.Traces)),
		zap.Int("events", len(r.machine.Events)))
	return rc, nil
}

// Close releases the underlying runtime.
func (r *Runner) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}
