package snap

import (
	"fmt"

	"github.com/dpkit/snap/internal/xerrors"
)

// DomainError reports an invalid numeric input: a non-positive or
// non-finite sensitivity, epsilon, or bound, or a log argument outside
// (0, 1). Callers should not retry a DomainError without changing the
// input.
type DomainError struct {
	Op  string
	Msg string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func domainError(op, msg string) error {
	return &DomainError{Op: op, Msg: msg}
}

// EntropyError reports that the OS cryptographically secure random source
// was unavailable or returned fewer bytes than requested. The kernel never
// falls back to a non-cryptographic generator; callers may retry.
type EntropyError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *EntropyError) Error() string {
	return xerrors.Wrap(e.Op, e.Cause).Error()
}

// Unwrap provides compatibility with errors.Unwrap / errors.Is / errors.As.
func (e *EntropyError) Unwrap() error {
	return e.Cause
}

func entropyError(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &EntropyError{Op: op, Cause: cause}
}

// PrecisionError reports that the high-precision arithmetic context
// required by the exact-log step could not be configured to the working
// precision the privacy proof requires. It is not expected to occur on any
// supported platform; surfacing it rather than silently degrading
// precision is the point.
type PrecisionError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *PrecisionError) Error() string {
	return xerrors.Wrap(e.Op, e.Cause).Error()
}

// Unwrap provides compatibility with errors.Unwrap / errors.Is / errors.As.
func (e *PrecisionError) Unwrap() error {
	return e.Cause
}

func precisionError(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &PrecisionError{Op: op, Cause: cause}
}
