package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/railway-reservation/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Type returns the underlying error type.
func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// From unwraps a CustomError from err. Anything else is reported as internal.
func From(err error) CustomError {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	return SetCustomError(constant.ErrInternal)
}

// Is reports whether err carries the given error type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	return stderrors.As(err, &ce) && ce.errType == errorType
}
