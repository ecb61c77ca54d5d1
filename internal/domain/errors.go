package domain

import "errors"

var (
	// ErrEmptySearchTerm signals a missing or empty search term.
	ErrEmptySearchTerm = errors.New("search term is required")
	// ErrUnknownScope signals a category outside the recognized values.
	ErrUnknownScope = errors.New("unknown memory scope")
	// ErrStoreAccess signals that a record inside an existing collection
	// root could not be read. A missing root is not a store error.
	ErrStoreAccess = errors.New("memory store access failed")
	// ErrInvalidArgument signals a rejected tool argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownTool signals a tool name with no registered handler.
	ErrUnknownTool = errors.New("unknown tool")
)
