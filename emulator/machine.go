// Package emulator is an in-process stand-in for the on-ledger host. A
// Machine holds the ledger fixture a contract runs against: the current
// transaction, cached ledger objects, the contract data store, and the
// sinks for traces, events and emitted transactions.
//
// The same Machine backs two execution paths. Install registers its
// methods in the host mock registry so guest packages run as ordinary Go
// in tests, and HostModule exposes them to a real guest binary through a
// wazero "host_lib" module.
//
// Keylets are computed as sha512-half over a namespace byte and the
// raw parameters. The shape matches the ledger (32 bytes, deterministic,
// collision-free across types) but the values are not consensus-exact.
// Float arithmetic runs on float64, ignoring rounding modes.
package emulator

import (
	"crypto/sha512"
	"sync"

	"github.com/xrplf/xrpl-wasm-go/host"
)

// SlotCount is the number of ledger object cache slots.
const SlotCount = 255

// Object is an emulated ledger object: leaf fields by field code, nested
// leaves by raw locator bytes, and array lengths.
type Object struct {
	Fields       map[int32][]byte
	Nested       map[string][]byte
	Arrays       map[int32]int32
	NestedArrays map[string]int32
}

// NewObject returns an empty ledger object.
func NewObject() *Object {
	return &Object{
		Fields:       make(map[int32][]byte),
		Nested:       make(map[string][]byte),
		Arrays:       make(map[int32]int32),
		NestedArrays: make(map[string]int32),
	}
}

// Event is an emitted contract event.
type Event struct {
	Name string
	Data []byte
}

// Param is a contract parameter with its serialized type code.
type Param struct {
	Type byte
	Data []byte
}

// DataEntry is one contract data value with its serialized type code.
// Writes arrive tagged; reads hand back only the value bytes, matching
// what the host does.
type DataEntry struct {
	Type  byte
	Value []byte
}

// BuiltTxn is a transaction assembled through build_txn/add_txn_field.
type BuiltTxn struct {
	Type    int32
	Fields  map[int32][]byte
	Emitted bool
}

// NFT is a minted token the emulator knows about.
type NFT struct {
	URI         []byte
	Issuer      [20]byte
	Taxon       uint32
	Flags       uint16
	TransferFee uint16
	Serial      uint32
}

// Machine is the emulated host state. The zero value is not usable; call
// NewMachine.
type Machine struct {
	mu sync.Mutex

	LedgerSeq  int32
	ParentTime int32
	BaseFee    int32
	ParentHash [32]byte
	Amendments map[[32]byte]bool

	Tx      *Object
	Current *Object
	Objects map[[32]byte]*Object

	slots [SlotCount + 1]*Object

	Data map[string]DataEntry

	InstanceParams []Param
	FunctionParams []Param

	// CheckSigFunc decides signature validity. Nil rejects everything.
	CheckSigFunc func(message, signature, pubkey []byte) bool

	Nfts map[string]NFT

	UpdatedData []byte
	Events      []Event
	Emitted     [][]byte
	Built       []*BuiltTxn
	Traces      []string
}

// NewMachine returns an empty machine with a default base fee of 10
// drops.
func NewMachine() *Machine {
	return &Machine{
		BaseFee:    10,
		Amendments: make(map[[32]byte]bool),
		Tx:         NewObject(),
		Current:    NewObject(),
		Objects:    make(map[[32]byte]*Object),
		Data:       make(map[string]DataEntry),
		Nfts:       make(map[string]NFT),
	}
}

func writeOut(out, v []byte) int32 {
	if len(v) > len(out) {
		return host.ErrBufferTooSmall.Code()
	}
	copy(out, v)
	return int32(len(v))
}

func objField(o *Object, field int32, out []byte) int32 {
	if o == nil {
		return host.ErrEmptySlot.Code()
	}
	v, ok := o.Fields[field]
	if !ok {
		return host.ErrFieldNotFound.Code()
	}
	return writeOut(out, v)
}

func objNested(o *Object, loc, out []byte) int32 {
	if o == nil {
		return host.ErrEmptySlot.Code()
	}
	if len(loc) == 0 || len(loc) > 64 {
		return host.ErrLocatorMalformed.Code()
	}
	v, ok := o.Nested[string(loc)]
	if !ok {
		return host.ErrFieldNotFound.Code()
	}
	return writeOut(out, v)
}

func objArrayLen(o *Object, field int32) int32 {
	if o == nil {
		return host.ErrEmptySlot.Code()
	}
	n, ok := o.Arrays[field]
	if !ok {
		return host.ErrNoArray.Code()
	}
	return n
}

func objNestedArrayLen(o *Object, loc []byte) int32 {
	if o == nil {
		return host.ErrEmptySlot.Code()
	}
	n, ok := o.NestedArrays[string(loc)]
	if !ok {
		return host.ErrNoArray.Code()
	}
	return n
}

// Ledger header.

func (m *Machine) GetLedgerSqn() int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LedgerSeq
}

func (m *Machine) GetParentLedgerTime() int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ParentTime
}

func (m *Machine) GetBaseFee() int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.BaseFee
}

func (m *Machine) GetParentLedgerHash(out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return writeOut(out, m.ParentHash[:])
}

func (m *Machine) AmendmentEnabled(amendment []byte) int32 {
	if len(amendment) != 32 {
		return host.ErrInvalidParams.Code()
	}
	var k [32]byte
	copy(k[:], amendment)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Amendments[k] {
		return 1
	}
	return 0
}

// Ledger object cache.

// PutObject stores obj under keylet so CacheLedgerObj can find it.
func (m *Machine) PutObject(keylet [32]byte, obj *Object) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[keylet] = obj
}

func (m *Machine) CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	if len(keylet) != 32 {
		return host.ErrInvalidParams.Code()
	}
	var k [32]byte
	copy(k[:], keylet)

	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.Objects[k]
	if !ok {
		return host.ErrLedgerObjNotFound.Code()
	}
	if cacheNum < 0 || cacheNum > SlotCount {
		return host.ErrSlotOutRange.Code()
	}
	if cacheNum == 0 {
		for i := int32(1); i <= SlotCount; i++ {
			if m.slots[i] == nil {
				cacheNum = i
				break
			}
		}
		if cacheNum == 0 {
			return host.ErrSlotsFull.Code()
		}
	}
	m.slots[cacheNum] = obj
	return cacheNum
}

func (m *Machine) slot(cacheNum int32) (*Object, int32) {
	if cacheNum < 1 || cacheNum > SlotCount {
		return nil, host.ErrSlotOutRange.Code()
	}
	o := m.slots[cacheNum]
	if o == nil {
		return nil, host.ErrEmptySlot.Code()
	}
	return o, 0
}

// Field access.

func (m *Machine) GetTxField(field int32, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return objField(m.Tx, field, out)
}

func (m *Machine) GetCurrentLedgerObjField(field int32, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return objField(m.Current, field, out)
}

func (m *Machine) GetLedgerObjField(cacheNum, field int32, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, rc := m.slot(cacheNum)
	if o == nil {
		return rc
	}
	return objField(o, field, out)
}

func (m *Machine) GetTxNestedField(loc, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return objNested(m.Tx, loc, out)
}

func (m *Machine) GetCurrentLedgerObjNestedField(loc, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return objNested(m.Current, loc, out)
}

func (m *Machine) GetLedgerObjNestedField(cacheNum int32, loc, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, rc := m.slot(cacheNum)
	if o == nil {
		return rc
	}
	return objNested(o, loc, out)
}

func (m *Machine) GetTxArrayLen(field int32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return objArrayLen(m.Tx, field)
}

func (m *Machine) GetCurrentLedgerObjArrayLen(field int32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return objArrayLen(m.Current, field)
}

func (m *Machine) GetLedgerObjArrayLen(cacheNum, field int32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, rc := m.slot(cacheNum)
	if o == nil {
		return rc
	}
	return objArrayLen(o, field)
}

func (m *Machine) GetTxNestedArrayLen(loc []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return objNestedArrayLen(m.Tx, loc)
}

func (m *Machine) GetCurrentLedgerObjNestedArrayLen(loc []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return objNestedArrayLen(m.Current, loc)
}

func (m *Machine) GetLedgerObjNestedArrayLen(cacheNum int32, loc []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, rc := m.slot(cacheNum)
	if o == nil {
		return rc
	}
	return objNestedArrayLen(o, loc)
}

// UpdateData replaces the contract's own data field.
func (m *Machine) UpdateData(data []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdatedData = append([]byte(nil), data...)
	return 0
}

// Crypto.

func sha512Half(data []byte) [32]byte {
	sum := sha512.Sum512(data)
	var h [32]byte
	copy(h[:], sum[:32])
	return h
}

func (m *Machine) ComputeSha512Half(data, out []byte) int32 {
	h := sha512Half(data)
	return writeOut(out, h[:])
}

func (m *Machine) CheckSig(message, signature, pubkey []byte) int32 {
	m.mu.Lock()
	fn := m.CheckSigFunc
	m.mu.Unlock()
	if fn != nil && fn(message, signature, pubkey) {
		return 1
	}
	return 0
}
