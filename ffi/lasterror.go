package ffi

var lastError error

func fail(err error) error {
	lastError = err
	return err
}

// LastError returns the message of the most recent bridge failure, or
// the empty string when no operation has failed since the last clear.
func LastError() string {
	if lastError == nil {
		return ""
	}
	return lastError.Error()
}

// ClearLastError resets the last-error slot.
func ClearLastError() {
	lastError = nil
}
