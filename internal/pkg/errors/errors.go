package errors

import "errors"

var (
	// ErrNotFound is returned by repositories when a lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument marks caller input a repository refuses to store.
	ErrInvalidArgument = errors.New("invalid argument")
)
