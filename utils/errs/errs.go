package errs

import (
	"github.com/pkg/errors"
	"log"
)

var (
	// ErrInvalidArgument is returned for a malformed construction request,
	// e.g. a fill of zero elements.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyContainer is returned when an operation needs at least one element.
	ErrEmptyContainer = errors.New("empty container")
	// ErrOutOfRange is returned for an index outside [-len, len-1].
	ErrOutOfRange = errors.New("index out of range")
	// ErrNullReference is returned when an iterator has no position.
	ErrNullReference = errors.New("null reference")
)

// Panic panics if err is not nil
func Panic(err error) {
	if err != nil {
		panic(err)
	}
}

// CondPanic panics with err when condition holds
func CondPanic(condition bool, err error) {
	if condition {
		Panic(err)
	}
}

func AssertTrue(b bool) {
	if !b {
		log.Fatalf("%+v", errors.Errorf("Assert failed"))
	}
}
