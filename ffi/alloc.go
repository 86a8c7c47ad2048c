package ffi

// Boundary allocation accounting. Every allocation whose ownership is
// handed to the caller bumps the counter; the matching teardown drops
// it. Single-threaded by contract, so a plain counter suffices.

var live int64

func track()   { live++ }
func untrack() { live-- }

// Live returns the number of boundary allocations not yet reclaimed.
// A correct produce/teardown pairing always returns this to zero.
func Live() int64 {
	return live
}
