package emulator

import (
	"encoding/binary"
	"math"

	"github.com/xrplf/xrpl-wasm-go/host"
)

// The emulator's opaque float representation is an IEEE 754 double in
// big-endian bytes. Rounding modes are accepted and ignored; the ledger's
// decimal semantics are out of scope here.

func floatIn(b []byte) (float64, int32) {
	if len(b) != 8 {
		return 0, host.ErrInvalidFloatInput.Code()
	}
	f := math.Float64frombits(binary.BigEndian.Uint64(b))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, host.ErrInvalidFloatInput.Code()
	}
	return f, 0
}

func floatOut(out []byte, f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return host.ErrInvalidFloatComputation.Code()
	}
	return writeOut(out, binary.BigEndian.AppendUint64(nil, math.Float64bits(f)))
}

func checkRounding(mode int32) int32 {
	if mode < host.RoundToNearest || mode > host.RoundUpward {
		return host.ErrInvalidParams.Code()
	}
	return 0
}

func (m *Machine) FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	if rc := checkRounding(roundingMode); rc < 0 {
		return rc
	}
	return floatOut(out, float64(value))
}

func (m *Machine) FloatFromUint(in, out []byte, roundingMode int32) int32 {
	if rc := checkRounding(roundingMode); rc < 0 {
		return rc
	}
	if len(in) != 8 {
		return host.ErrInvalidFloatInput.Code()
	}
	return floatOut(out, float64(binary.BigEndian.Uint64(in)))
}

func (m *Machine) FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	if rc := checkRounding(roundingMode); rc < 0 {
		return rc
	}
	return floatOut(out, float64(mantissa)*math.Pow10(int(exponent)))
}

func (m *Machine) FloatCompare(a, b []byte) int32 {
	x, rc := floatIn(a)
	if rc < 0 {
		return rc
	}
	y, rc := floatIn(b)
	if rc < 0 {
		return rc
	}
	switch {
	case x == y:
		return 0
	case x > y:
		return 1
	default:
		return 2
	}
}

func (m *Machine) floatBinop(a, b, out []byte, roundingMode int32, op func(x, y float64) float64) int32 {
	if rc := checkRounding(roundingMode); rc < 0 {
		return rc
	}
	x, rc := floatIn(a)
	if rc < 0 {
		return rc
	}
	y, rc := floatIn(b)
	if rc < 0 {
		return rc
	}
	return floatOut(out, op(x, y))
}

func (m *Machine) FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return m.floatBinop(a, b, out, roundingMode, func(x, y float64) float64 { return x + y })
}

func (m *Machine) FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return m.floatBinop(a, b, out, roundingMode, func(x, y float64) float64 { return x - y })
}

func (m *Machine) FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return m.floatBinop(a, b, out, roundingMode, func(x, y float64) float64 { return x * y })
}

func (m *Machine) FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	return m.floatBinop(a, b, out, roundingMode, func(x, y float64) float64 { return x / y })
}

func (m *Machine) FloatPow(in []byte, n int32, out []byte, roundingMode int32) int32 {
	if rc := checkRounding(roundingMode); rc < 0 {
		return rc
	}
	x, rc := floatIn(in)
	if rc < 0 {
		return rc
	}
	return floatOut(out, math.Pow(x, float64(n)))
}

func (m *Machine) FloatRoot(in []byte, n int32, out []byte, roundingMode int32) int32 {
	if rc := checkRounding(roundingMode); rc < 0 {
		return rc
	}
	if n == 0 {
		return host.ErrInvalidParams.Code()
	}
	x, rc := floatIn(in)
	if rc < 0 {
		return rc
	}
	return floatOut(out, math.Pow(x, 1/float64(n)))
}

func (m *Machine) FloatLog(in, out []byte, roundingMode int32) int32 {
	if rc := checkRounding(roundingMode); rc < 0 {
		return rc
	}
	x, rc := floatIn(in)
	if rc < 0 {
		return rc
	}
	return floatOut(out, math.Log10(x))
}
