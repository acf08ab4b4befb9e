package host

// Rounding modes accepted by the host float functions. They are passed
// through unmodified; the guest performs no rounding of its own.
const (
	RoundToNearest   int32 = 0
	RoundTowardsZero int32 = 1
	RoundDownward    int32 = 2
	RoundUpward      int32 = 3
)

// CheckResult maps a host return code to an error. Non-negative codes are
// success.
func CheckResult(code int32) error {
	if code < 0 {
		return FromCode(code)
	}
	return nil
}

// CheckResultBytes maps a host return code to an error and additionally
// requires the host to have reported exactly expected bytes. A byte-count
// mismatch is an internal invariant trip, never a silently truncated or
// zero-extended value.
func CheckResultBytes(code int32, expected int) error {
	if code < 0 {
		return FromCode(code)
	}
	if int(code) != expected {
		return ErrInternal
	}
	return nil
}

// CheckResultOptional is CheckResult for optional fields: a field-not-found
// code reports (false, nil) instead of an error.
func CheckResultOptional(code int32) (bool, error) {
	if code == ErrFieldNotFound.Code() {
		return false, nil
	}
	if code < 0 {
		return false, FromCode(code)
	}
	return true, nil
}

// CheckResultBytesOptional combines CheckResultBytes and CheckResultOptional.
func CheckResultBytesOptional(code int32, expected int) (bool, error) {
	if code == ErrFieldNotFound.Code() {
		return false, nil
	}
	if code < 0 {
		return false, FromCode(code)
	}
	if int(code) != expected {
		return false, ErrInternal
	}
	return true, nil
}
