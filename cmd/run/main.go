package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/xrplf/xrpl-wasm-go/emulator"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to contract wasm file")
		fixtureFile = flag.String("fixture", "", "JSON fixture with ledger state (optional)")
		entry       = flag.String("entry", emulator.DefaultEntry, "Entry export to invoke")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: run -wasm <file.wasm> [-fixture state.json] [-entry name]")
		fmt.Fprintln(os.Stderr, "       run -wasm <file.wasm> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		emulator.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*wasmFile, *fixtureFile, *entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*wasmFile, *fixtureFile, *entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadMachine(fixtureFile string) (*emulator.Machine, error) {
	if fixtureFile == "" {
		return emulator.NewMachine(), nil
	}
	return emulator.LoadFixture(fixtureFile)
}

func execute(wasmFile, fixtureFile, entry string) (*emulator.Machine, int32, error) {
	ctx := context.Background()

	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return nil, 0, fmt.Errorf("read file: %w", err)
	}

	machine, err := loadMachine(fixtureFile)
	if err != nil {
		return nil, 0, fmt.Errorf("load fixture: %w", err)
	}

	runner, err := emulator.NewRunner(ctx, machine)
	if err != nil {
		return nil, 0, err
	}
	defer runner.Close(ctx)

	rc, err := runner.Run(ctx, data, entry)
	if err != nil {
		return machine, 0, err
	}
	return machine, rc, nil
}

func run(wasmFile, fixtureFile, entry string) error {
	fmt.Printf("Contract: %s\n", wasmFile)

	machine, rc, err := execute(wasmFile, fixtureFile, entry)
	if err != nil {
		return err
	}

	fmt.Printf("Result: %d\n", rc)

	if len(machine.Traces) > 0 {
		fmt.Printf("\n--- traces ---\n")
		for _, line := range machine.Traces {
			fmt.Println(line)
		}
	}
	if len(machine.Events) > 0 {
		fmt.Printf("\n--- events ---\n")
		for _, ev := range machine.Events {
			fmt.Printf("%s %s\n", ev.Name, hex.EncodeToString(ev.Data))
		}
	}
	if len(machine.Emitted) > 0 {
		fmt.Printf("\n--- emitted transactions ---\n")
		for _, txn := range machine.Emitted {
			fmt.Println(hex.EncodeToString(txn))
		}
	}
	for i, txn := range machine.Built {
		if !txn.Emitted {
			continue
		}
		fmt.Printf("\n--- built transaction %d (type %d) ---\n", i, txn.Type)
		for field, val := range txn.Fields {
			fmt.Printf("  %d: %s\n", field, hex.EncodeToString(val))
		}
	}
	if len(machine.UpdatedData) > 0 {
		fmt.Printf("\n--- updated data ---\n%s\n", hex.EncodeToString(machine.UpdatedData))
	}

	return nil
}
