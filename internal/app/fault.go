package app

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a fault kind on the diagnostic screen.
type ErrorCode uint8

const (
	CodeNone        ErrorCode = 0
	CodeStateDecode ErrorCode = 1 // stored AppState did not decode
	CodeStoreBusy   ErrorCode = 2 // game state lock was held
)

// Sentinel errors wrapped by faults.
var (
	ErrStateDecode = errors.New("app: invalid stored state")
	ErrStoreBusy   = errors.New("app: game state unavailable")
)

// Fault is an error carrying a diagnostic code.
type Fault struct {
	Code ErrorCode
	Op   string // what was being done when the fault happened
	Err  error
}

func newFault(code ErrorCode, op string, err error) *Fault {
	return &Fault{Code: code, Op: op, Err: err}
}

func (f *Fault) Error() string {
	return fmt.Sprintf("code %d: %s: %v", f.Code, f.Op, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// CodeOf returns the diagnostic code carried by err, or CodeNone.
func CodeOf(err error) ErrorCode {
	var f *Fault
	if errors.As(err, &f) {
		return f.Code
	}
	return CodeNone
}
