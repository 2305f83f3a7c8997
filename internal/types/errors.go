package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural failures. The detailed error types below
// match their sentinel through errors.Is.
var (
	ErrMagicMismatch   = errors.New("magic mismatch")
	ErrTruncated       = errors.New("truncated")
	ErrUnknownPageSize = errors.New("unknown page size")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrRegionAbsent    = errors.New("region absent")
	ErrSourceTooShort  = errors.New("source too short")
)

// MagicMismatchError reports a header whose signature is not BootMagic.
type MagicMismatchError struct {
	Expected []byte
	Actual   []byte
}

func (e *MagicMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %q, got %q", ErrMagicMismatch, e.Expected, e.Actual)
}

func (e *MagicMismatchError) Is(target error) bool { return target == ErrMagicMismatch }

// TruncatedError reports input shorter than a fixed structure requires.
type TruncatedError struct {
	Need int64
	Have int64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v: need %d bytes, have %d", ErrTruncated, e.Need, e.Have)
}

func (e *TruncatedError) Is(target error) bool { return target == ErrTruncated }

// InvalidPageSizeError reports a page size override that cannot be used.
type InvalidPageSizeError struct {
	Value uint32
}

func (e *InvalidPageSizeError) Error() string {
	return fmt.Sprintf("%v: %d, page size must be a positive integer", ErrInvalidPageSize, e.Value)
}

func (e *InvalidPageSizeError) Is(target error) bool { return target == ErrInvalidPageSize }

// RegionAbsentError reports a request for a region that has no data.
type RegionAbsentError struct {
	Kind RegionKind
}

func (e *RegionAbsentError) Error() string {
	return fmt.Sprintf("%v: the %s region has a declared size of 0", ErrRegionAbsent, e.Kind)
}

func (e *RegionAbsentError) Is(target error) bool { return target == ErrRegionAbsent }

// SourceTooShortError reports a region extending past the readable end of the source.
type SourceTooShortError struct {
	Kind      RegionKind
	Offset    uint64
	Size      uint64
	Available uint64
}

func (e *SourceTooShortError) Error() string {
	return fmt.Sprintf("%v: %s region spans 0x%X-0x%X but source ends at 0x%X",
		ErrSourceTooShort, e.Kind, e.Offset, e.Offset+e.Size, e.Available)
}

func (e *SourceTooShortError) Is(target error) bool { return target == ErrSourceTooShort }
