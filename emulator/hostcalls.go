package emulator

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/xrplf/xrpl-wasm-go/host"
)

// Trace sinks. Each call appends one rendered line to Traces and mirrors
// it to the zap logger at debug level.

func (m *Machine) addTrace(line string) {
	m.mu.Lock()
	m.Traces = append(m.Traces, line)
	m.mu.Unlock()
	Logger().Debug("trace", zap.String("line", line))
}

func (m *Machine) Trace(msg, data []byte, asHex int32) int32 {
	if len(data) == 0 {
		m.addTrace(string(msg))
		return 0
	}
	if asHex != 0 {
		m.addTrace(fmt.Sprintf("%s %s", msg, hex.EncodeToString(data)))
	} else {
		m.addTrace(fmt.Sprintf("%s %s", msg, data))
	}
	return 0
}

func (m *Machine) TraceNum(msg []byte, number int64) int32 {
	m.addTrace(fmt.Sprintf("%s %d", msg, number))
	return 0
}

func (m *Machine) TraceAccount(msg, account []byte) int32 {
	if len(account) != 20 {
		return host.ErrInvalidAccount.Code()
	}
	m.addTrace(fmt.Sprintf("%s %s", msg, hex.EncodeToString(account)))
	return 0
}

func (m *Machine) TraceOpaqueFloat(msg, opaqueFloat []byte) int32 {
	f, rc := floatIn(opaqueFloat)
	if rc < 0 {
		return rc
	}
	m.addTrace(fmt.Sprintf("%s %g", msg, f))
	return 0
}

func (m *Machine) TraceAmount(msg, amount []byte) int32 {
	if len(amount) != 48 {
		return host.ErrInvalidParams.Code()
	}
	m.addTrace(fmt.Sprintf("%s %s", msg, hex.EncodeToString(amount)))
	return 0
}

// Contract parameters.

func paramOut(params []Param, index, stTypeID int32, out []byte) int32 {
	if index < 0 || int(index) >= len(params) {
		return host.ErrIndexOutOfBounds.Code()
	}
	p := params[index]
	if int32(p.Type) != stTypeID {
		return host.ErrInvalidParams.Code()
	}
	return writeOut(out, p.Data)
}

func (m *Machine) InstanceParam(index, stTypeID int32, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return paramOut(m.InstanceParams, index, stTypeID, out)
}

func (m *Machine) FunctionParam(index, stTypeID int32, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return paramOut(m.FunctionParams, index, stTypeID, out)
}

// Contract data store. Nested objects and array elements live in the
// same flat map under composed keys.

func dataKey(account, key []byte) string {
	return string(account) + "\x00" + string(key)
}

func nestedDataKey(account, nested, key []byte) string {
	return string(account) + "\x00" + string(nested) + "\x01" + string(key)
}

func arrayDataKey(account, key []byte, index int32) string {
	return string(account) + "\x00" + string(key) + "\x02" + string(binary.BigEndian.AppendUint32(nil, uint32(index)))
}

func nestedArrayDataKey(account, key []byte, index int32, fieldKey []byte) string {
	return arrayDataKey(account, key, index) + "\x01" + string(fieldKey)
}

func (m *Machine) dataGet(k string, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.Data[k]
	if !ok {
		return host.ErrFieldNotFound.Code()
	}
	return writeOut(out, e.Value)
}

// dataSet consumes a tagged buffer: one type byte followed by the value.
func (m *Machine) dataSet(k string, data []byte) int32 {
	if len(data) < 2 {
		return host.ErrInvalidParams.Code()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[k] = DataEntry{Type: data[0], Value: append([]byte(nil), data[1:]...)}
	return 0
}

func (m *Machine) GetDataObjectField(account, key, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return m.dataGet(dataKey(account, key), out)
}

func (m *Machine) GetDataNestedObjectField(account, nested, key, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return m.dataGet(nestedDataKey(account, nested, key), out)
}

func (m *Machine) GetDataArrayElementField(account, key []byte, index int32, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return m.dataGet(arrayDataKey(account, key, index), out)
}

func (m *Machine) GetDataNestedArrayElementField(account, key []byte, index int32, fieldKey, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return m.dataGet(nestedArrayDataKey(account, key, index, fieldKey), out)
}

func (m *Machine) SetDataObjectField(account, key, data []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return m.dataSet(dataKey(account, key), data)
}

func (m *Machine) SetDataNestedObjectField(account, nested, key, data []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return m.dataSet(nestedDataKey(account, nested, key), data)
}

func (m *Machine) SetDataArrayElementField(account, key []byte, index int32, data []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return m.dataSet(arrayDataKey(account, key, index), data)
}

func (m *Machine) SetDataNestedArrayElementField(account, key []byte, index int32, fieldKey, data []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	return m.dataSet(nestedArrayDataKey(account, key, index, fieldKey), data)
}

// NFTs.

func nftKey(account, nftID []byte) string {
	return string(account) + "\x00" + string(nftID)
}

// PutNFT registers a token for the given holder.
func (m *Machine) PutNFT(account, nftID []byte, nft NFT) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Nfts[nftKey(account, nftID)] = nft
}

func (m *Machine) nft(nftID []byte) (NFT, bool) {
	// Keys hold a 20-byte account prefix and a separator; anything
	// shorter cannot match.
	for k, v := range m.Nfts {
		if len(k) >= 21 && k[21:] == string(nftID) {
			return v, true
		}
	}
	return NFT{}, false
}

func (m *Machine) GetNft(account, nftID, out []byte) int32 {
	if rc := checkAccount(account); rc < 0 {
		return rc
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	nft, ok := m.Nfts[nftKey(account, nftID)]
	if !ok {
		return host.ErrLedgerObjNotFound.Code()
	}
	return writeOut(out, nft.URI)
}

func (m *Machine) GetNftIssuer(nftID, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	nft, ok := m.nft(nftID)
	if !ok {
		return host.ErrLedgerObjNotFound.Code()
	}
	return writeOut(out, nft.Issuer[:])
}

func (m *Machine) GetNftTaxon(nftID, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	nft, ok := m.nft(nftID)
	if !ok {
		return host.ErrLedgerObjNotFound.Code()
	}
	return writeOut(out, binary.BigEndian.AppendUint32(nil, nft.Taxon))
}

func (m *Machine) GetNftFlags(nftID []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	nft, ok := m.nft(nftID)
	if !ok {
		return host.ErrLedgerObjNotFound.Code()
	}
	return int32(nft.Flags)
}

func (m *Machine) GetNftTransferFee(nftID []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	nft, ok := m.nft(nftID)
	if !ok {
		return host.ErrLedgerObjNotFound.Code()
	}
	return int32(nft.TransferFee)
}

func (m *Machine) GetNftSerial(nftID, out []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	nft, ok := m.nft(nftID)
	if !ok {
		return host.ErrLedgerObjNotFound.Code()
	}
	return writeOut(out, binary.BigEndian.AppendUint32(nil, nft.Serial))
}

// Transaction and event emission.

func (m *Machine) BuildTxn(txnType int32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Built = append(m.Built, &BuiltTxn{Type: txnType, Fields: make(map[int32][]byte)})
	return int32(len(m.Built) - 1)
}

func (m *Machine) AddTxnField(index, field int32, data []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || int(index) >= len(m.Built) {
		return host.ErrIndexOutOfBounds.Code()
	}
	t := m.Built[index]
	if t.Emitted {
		return host.ErrInvalidParams.Code()
	}
	t.Fields[field] = append([]byte(nil), data...)
	return 0
}

func (m *Machine) EmitBuiltTxn(index int32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || int(index) >= len(m.Built) {
		return host.ErrIndexOutOfBounds.Code()
	}
	t := m.Built[index]
	if t.Emitted {
		return host.ErrInvalidParams.Code()
	}
	t.Emitted = true
	return 0
}

func (m *Machine) EmitTxn(txn []byte) int32 {
	if len(txn) == 0 {
		return host.ErrInvalidParams.Code()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Emitted = append(m.Emitted, append([]byte(nil), txn...))
	return 0
}

func (m *Machine) EmitEvent(name, data []byte) int32 {
	if len(name) == 0 {
		return host.ErrInvalidParams.Code()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, Event{Name: string(name), Data: append([]byte(nil), data...)})
	return 0
}
