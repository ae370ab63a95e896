package model

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorKindAuth       ErrorKind = "auth"
	ErrorKindThrottling ErrorKind = "throttling"
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindConflict   ErrorKind = "conflict"
	ErrorKindNetwork    ErrorKind = "network"
	ErrorKindTimeout    ErrorKind = "timeout"
	ErrorKindUnknown    ErrorKind = "unknown"
)

// RemoteError is returned for every failed call against the flow service.
type RemoteError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s failed (%s): %s", e.Op, e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func NewRemoteError(op string, kind ErrorKind, err error) *RemoteError {
	return &RemoteError{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first RemoteError in the chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Kind
	}
	return ErrorKindUnknown
}

type UnsupportedNodeError struct {
	Node string
	Type string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("node %s has unsupported type %q", e.Node, e.Type)
}

type NotFoundError struct {
	name string
}

func NewNotFoundError(name string) NotFoundError {
	return NotFoundError{name: name}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.name)
}
