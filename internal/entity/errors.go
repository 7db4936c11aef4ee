package entity

import "errors"

// Domain errors
var (
	// Storage errors
	ErrStorageFailed = errors.New("no storage backend accepted the document")
	ErrFolderLookup  = errors.New("remote folder lookup failed")

	// Generation errors
	ErrEmptyResponse = errors.New("provider returned an empty response")

	// Validation errors
	ErrMissingField = errors.New("required field is missing")
)
