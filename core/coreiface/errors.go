package coreiface

import (
	"errors"
)

var (
	// ErrInternalServer may be included in the error wrapper to signal that the error
	// was generated exclusively due to a server side error and not bad input data.
	ErrInternalServer = errors.New("internal server error")

	// ErrBadRequest is included in the error wrapper when the error was generated
	// due to bad input data.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is included in the error wrapper when the error was generated
	// due to a requested asset not being found.
	ErrNotFound = errors.New("not found")
)
