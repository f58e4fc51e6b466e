package natset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/natset/internal/conv"
)

var (
	// ErrInvalidArgument is the class of every precondition violation
	// reported by this package.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrNegativeElement indicates a negative integer was supplied where a
// set element was expected.
//
// errors.Is(err, ErrInvalidArgument) reports true for this error.
type ErrNegativeElement struct {
	Value int
}

func (e *ErrNegativeElement) Error() string {
	return fmt.Sprintf("negative element: %d", e.Value)
}

func (e *ErrNegativeElement) Unwrap() error { return ErrInvalidArgument }

// ErrOverflow indicates a value that does not fit into an int element.
//
// errors.Is(err, ErrInvalidArgument) reports true for this error.
type ErrOverflow struct {
	Value uint64
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("element overflows int: %d", e.Value)
}

func (e *ErrOverflow) Unwrap() error { return ErrInvalidArgument }

// Validate returns an *ErrNegativeElement if n cannot be a set element.
func Validate(n int) error {
	if _, err := conv.IntToUint64(n); err != nil {
		return &ErrNegativeElement{Value: n}
	}
	return nil
}

// mustValidate panics with an *ErrNegativeElement for n < 0.
// Callers run it before touching any state.
func mustValidate(n int) {
	if err := Validate(n); err != nil {
		panic(err)
	}
}
