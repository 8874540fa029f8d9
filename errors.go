package rlezoo

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is the error type returned by everything in this module. Errors
// derived from one of the sentinels below match it with errors.Is.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseCodecError string

const rootError = baseCodecError("")

var ErrFormatViolation = rootError.WithMessage("Malformed compressed data")
var ErrUnrepresentableCommand = rootError.WithMessage("Command not representable in this format")
var ErrUnknownVariant = rootError.WithMessage("Unknown RLE variant")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrSelfCheckFailed = rootError.WithMessage("Encoding table self-check failed")
var ErrSuiteFailed = rootError.WithMessage("Test suite failed")

func (e baseCodecError) Error() string {
	return string(e)
}

func (e baseCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
