package host

import "fmt"

// Error is a host error code. The host reports failures as negative return
// values; Error covers that space one-to-one so codes round-trip losslessly
// through FromCode and Code.
type Error int32

const (
	// ErrInternal is reserved for internal invariant trips, generally
	// unrelated to inputs.
	ErrInternal Error = -1

	// ErrFieldNotFound means the requested serialized field is not present
	// in the object under inspection.
	ErrFieldNotFound Error = -2

	// ErrBufferTooSmall means the provided buffer cannot hold the field.
	ErrBufferTooSmall Error = -3

	// ErrNoArray means an array operation was applied to a non-array field.
	ErrNoArray Error = -4

	// ErrNotLeafField means the field is an aggregate and cannot be read
	// directly.
	ErrNotLeafField Error = -5

	// ErrLocatorMalformed means the packed locator bytes are invalid.
	ErrLocatorMalformed Error = -6

	// ErrSlotOutRange means the slot number is outside the valid range.
	ErrSlotOutRange Error = -7

	// ErrSlotsFull means no free slot is available.
	ErrSlotsFull Error = -8

	// ErrEmptySlot means the slot holds no cached object.
	ErrEmptySlot Error = -9

	// ErrLedgerObjNotFound means no ledger object exists for the keylet.
	ErrLedgerObjNotFound Error = -10

	// ErrInvalidDecoding means serialized data failed to decode.
	ErrInvalidDecoding Error = -11

	// ErrDataFieldTooLarge means the data field exceeds the host limit.
	ErrDataFieldTooLarge Error = -12

	// ErrPointerOutOfBounds means a pointer/length pair described memory
	// outside the guest's exported memory.
	ErrPointerOutOfBounds Error = -13

	// ErrNoMemoryExported means the module exports no linear memory.
	ErrNoMemoryExported Error = -14

	// ErrInvalidParams means one or more call parameters are invalid.
	ErrInvalidParams Error = -15

	// ErrInvalidAccount means the account identifier is invalid.
	ErrInvalidAccount Error = -16

	// ErrInvalidField means the field code is unknown.
	ErrInvalidField Error = -17

	// ErrIndexOutOfBounds means the array index is out of range.
	ErrIndexOutOfBounds Error = -18

	// ErrInvalidFloatInput means the float input bytes are malformed.
	ErrInvalidFloatInput Error = -19

	// ErrInvalidFloatComputation means a float operation failed
	// (overflow, underflow, division by zero).
	ErrInvalidFloatComputation Error = -20
)

var errNames = map[Error]string{
	ErrInternal:                "internal error",
	ErrFieldNotFound:           "field not found",
	ErrBufferTooSmall:          "buffer too small",
	ErrNoArray:                 "not an array",
	ErrNotLeafField:            "not a leaf field",
	ErrLocatorMalformed:        "locator malformed",
	ErrSlotOutRange:            "slot out of range",
	ErrSlotsFull:               "slots full",
	ErrEmptySlot:               "empty slot",
	ErrLedgerObjNotFound:       "ledger object not found",
	ErrInvalidDecoding:         "invalid decoding",
	ErrDataFieldTooLarge:       "data field too large",
	ErrPointerOutOfBounds:      "pointer out of bounds",
	ErrNoMemoryExported:        "no memory exported",
	ErrInvalidParams:           "invalid parameters",
	ErrInvalidAccount:          "invalid account",
	ErrInvalidField:            "invalid field",
	ErrIndexOutOfBounds:        "index out of bounds",
	ErrInvalidFloatInput:       "invalid float input",
	ErrInvalidFloatComputation: "invalid float computation",
}

// FromCode converts a negative host return code to an Error. Codes outside
// the known range are preserved as-is so Code still round-trips.
func FromCode(code int32) Error {
	return Error(code)
}

// Code returns the numeric host code for the error.
func (e Error) Code() int32 {
	return int32(e)
}

func (e Error) Error() string {
	if name, ok := errNames[e]; ok {
		return fmt.Sprintf("host: %s (%d)", name, int32(e))
	}
	return fmt.Sprintf("host: error code %d", int32(e))
}
