package emulator

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Fixture is the JSON form of a machine's initial state. Byte values are
// hex strings; field maps are keyed by decimal field code.
type Fixture struct {
	LedgerSeq  int32             `json:"ledger_seq"`
	ParentTime int32             `json:"parent_time"`
	BaseFee    int32             `json:"base_fee"`
	ParentHash string            `json:"parent_hash,omitempty"`
	Amendments []string          `json:"amendments,omitempty"`
	Tx         map[string]string `json:"tx,omitempty"`
	Current    map[string]string `json:"current,omitempty"`
	Params     struct {
		Instance []FixtureParam `json:"instance,omitempty"`
		Function []FixtureParam `json:"function,omitempty"`
	} `json:"params"`
}

// FixtureParam is one contract parameter in a fixture.
type FixtureParam struct {
	Type byte   `json:"type"`
	Data string `json:"data"`
}

func fieldMap(src map[string]string, dst map[int32][]byte) error {
	for code, val := range src {
		n, err := strconv.ParseInt(code, 10, 32)
		if err != nil {
			return fmt.Errorf("field code %q: %w", code, err)
		}
		b, err := hex.DecodeString(val)
		if err != nil {
			return fmt.Errorf("field %s: %w", code, err)
		}
		dst[int32(n)] = b
	}
	return nil
}

func fixtureParams(src []FixtureParam) ([]Param, error) {
	out := make([]Param, 0, len(src))
	for i, p := range src {
		b, err := hex.DecodeString(p.Data)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		out = append(out, Param{Type: p.Type, Data: b})
	}
	return out, nil
}

// Machine builds a machine from the fixture.
func (f *Fixture) Machine() (*Machine, error) {
	m := NewMachine()
	m.LedgerSeq = f.LedgerSeq
	m.ParentTime = f.ParentTime
	if f.BaseFee != 0 {
		m.BaseFee = f.BaseFee
	}
	if f.ParentHash != "" {
		b, err := hex.DecodeString(f.ParentHash)
		if err != nil || len(b) != 32 {
			return nil, fmt.Errorf("parent_hash: want 32 hex bytes")
		}
		copy(m.ParentHash[:], b)
	}
	for _, a := range f.Amendments {
		b, err := hex.DecodeString(a)
		if err != nil || len(b) != 32 {
			return nil, fmt.Errorf("amendment %q: want 32 hex bytes", a)
		}
		var k [32]byte
		copy(k[:], b)
		m.Amendments[k] = true
	}
	if err := fieldMap(f.Tx, m.Tx.Fields); err != nil {
		return nil, fmt.Errorf("tx: %w", err)
	}
	if err := fieldMap(f.Current, m.Current.Fields); err != nil {
		return nil, fmt.Errorf("current: %w", err)
	}
	var err error
	if m.InstanceParams, err = fixtureParams(f.Params.Instance); err != nil {
		return nil, err
	}
	if m.FunctionParams, err = fixtureParams(f.Params.Function); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFixture reads a JSON fixture file and builds a machine from it.
func LoadFixture(path string) (*Machine, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return f.Machine()
}
