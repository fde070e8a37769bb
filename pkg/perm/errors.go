package perm

import (
	"errors"
	"fmt"
)

var (
	ErrUnknown = errors.New("perm: unknown error")

	ErrFailedToConnect     = errors.New("perm: failed to connect")
	ErrUnauthenticated     = errors.New("perm: unauthenticated")
	ErrNoTransportSecurity = errors.New("perm: no transport security set (use perm.WithTLSConfig() or perm.WithInsecure() to set)")
	ErrClientConnClosing   = errors.New("perm: the client connection is already closing or closed")
	ErrNotPersisted        = errors.New("perm: the server could not save the change")

	ErrAssignmentNotFound = NewErrNotFound("assignment")

	ErrProjectIDEmpty  = NewErrCannotBeEmpty("project id")
	ErrStaffEmailEmpty = NewErrCannotBeEmpty("staff email")
)

type ErrNotFound struct {
	model string
}

func NewErrNotFound(model string) ErrNotFound {
	return ErrNotFound{
		model: model,
	}
}

func (err ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", err.model)
}

type ErrAlreadyExists struct {
	model string
}

func NewErrAlreadyExists(model string) ErrAlreadyExists {
	return ErrAlreadyExists{
		model: model,
	}
}

func (err ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s already exists", err.model)
}

type ErrCannotBeEmpty struct {
	model string
}

func NewErrCannotBeEmpty(model string) ErrCannotBeEmpty {
	return ErrCannotBeEmpty{
		model: model,
	}
}

func (err ErrCannotBeEmpty) Error() string {
	return fmt.Sprintf("%s cannot be empty", err.model)
}

// ErrInvalidRequest carries the server's explanation of a rejected request.
type ErrInvalidRequest struct {
	msg string
}

func NewErrInvalidRequest(msg string) ErrInvalidRequest {
	return ErrInvalidRequest{
		msg: msg,
	}
}

func (err ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid request: %s", err.msg)
}

// ErrPersistenceFailed is returned by a store mutation that was applied in
// memory but could not be written to durable storage. The mutation stands.
type ErrPersistenceFailed struct {
	Err error
}

func NewErrPersistenceFailed(err error) *ErrPersistenceFailed {
	return &ErrPersistenceFailed{Err: err}
}

func (err *ErrPersistenceFailed) Error() string {
	return fmt.Sprintf("persistence failed: %s", err.Err)
}

func (err *ErrPersistenceFailed) Unwrap() error {
	return err.Err
}

// IsPersistenceFailure reports whether err only signals a failed snapshot
// write.
func IsPersistenceFailure(err error) bool {
	var pErr *ErrPersistenceFailed
	return errors.As(err, &pErr)
}
