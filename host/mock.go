//go:build !wasm

package host

import (
	"sync"
	"testing"
)

// Call carries the arguments of one host-function invocation to a mock.
// In holds the input buffers in declaration order, Out is the caller's
// output buffer (may be nil for functions without one). I32 holds the
// scalar i32 arguments in declaration order, I64 the single i64 argument
// where the function has one.
type Call struct {
	Name string
	I32  []int32
	I64  int64
	In   [][]byte
	Out  []byte
}

// MockFunc produces the return code of a mocked host function. It may
// write into c.Out before returning.
type MockFunc func(c *Call) int32

var (
	mockMu sync.RWMutex
	mocks  = map[string]MockFunc{}
)

// SetMock installs fn for the host function with the given ABI name,
// replacing any previous mock.
func SetMock(name string, fn MockFunc) {
	mockMu.Lock()
	mocks[name] = fn
	mockMu.Unlock()
}

// ClearMock removes the mock for name, if any.
func ClearMock(name string) {
	mockMu.Lock()
	delete(mocks, name)
	mockMu.Unlock()
}

// ClearAllMocks removes every installed mock.
func ClearAllMocks() {
	mockMu.Lock()
	mocks = map[string]MockFunc{}
	mockMu.Unlock()
}

// MockT installs fn for the duration of the test and removes it on cleanup.
func MockT(t *testing.T, name string, fn MockFunc) {
	t.Helper()
	SetMock(name, fn)
	t.Cleanup(func() { ClearMock(name) })
}

// ReturnBytes builds a mock that copies b into the output buffer and
// returns the number of bytes written, or ErrBufferTooSmall when the
// buffer cannot hold b.
func ReturnBytes(b []byte) MockFunc {
	return func(c *Call) int32 {
		if len(c.Out) < len(b) {
			return int32(ErrBufferTooSmall)
		}
		copy(c.Out, b)
		return int32(len(b))
	}
}

// ReturnCode builds a mock that returns a fixed code and writes nothing.
func ReturnCode(code int32) MockFunc {
	return func(*Call) int32 { return code }
}

func dispatch(c *Call) int32 {
	mockMu.RLock()
	fn := mocks[c.Name]
	mockMu.RUnlock()
	if fn == nil {
		return int32(ErrInternal)
	}
	return fn(c)
}
