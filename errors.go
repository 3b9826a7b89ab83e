package edigen

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrUnknownLineOfBusiness  = errors.New("unknown line of business")
	ErrUnknownPoolCategory    = errors.New("unknown pool category")
	ErrInvalidRecordCount     = errors.New("record count must not be negative")
	ErrInvalidRange           = errors.New("upper bound is less than lower bound")
	ErrEmptyPool              = errors.New("no candidates to choose from")
)

// ConfigError is an error caused by caller-supplied configuration. It
// wraps one of the Err* sentinel values and carries the offending input.
type ConfigError struct {
	// Input is the caller-supplied value that failed validation
	Input string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Input == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("'%s': %s", e.Input, e.Err.Error())
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigErr creates a new ConfigError referencing the given input value
func newConfigErr(err error, input string) error {
	return &ConfigError{
		Input: input,
		Err:   err,
	}
}
