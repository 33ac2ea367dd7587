package services

import "fmt"

// NetworkError is a transport-level failure reaching the food search API.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "food search request failed: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError is a malformed or unexpected search API response body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "food search response decode failed: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// QueryError is a transport-level failure during the pre-save existence check.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return "saved record lookup failed: " + e.Err.Error() }
func (e *QueryError) Unwrap() error { return e.Err }

// ConflictError reports that a matching record is already saved. Callers
// treat it as "already exists", not as a fatal failure.
type ConflictError struct {
	FdcID       int64
	Description string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("food %d (%s) is already saved", e.FdcID, e.Description)
}

// SaveError is a transport-level failure during the record insert.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "saved record insert failed: " + e.Err.Error() }
func (e *SaveError) Unwrap() error { return e.Err }
