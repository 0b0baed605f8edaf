// Package mongoerr handles MongoDB driver errors.
//
// It classifies driver errors (duplicate keys, missing documents,
// timeouts) and converts them into user-friendly HTTP errors, e.g. a
// unique index violation becomes a 409 Conflict.
package mongoerr

import (
	"fmt"
)

// Code categorizes a driver error.
type Code string

const (
	Other        Code = "other"
	DuplicateKey Code = "duplicate_key"
	NoDocuments  Code = "no_documents"
	Timeout      Code = "timeout"
	Network      Code = "network"
)

// DuplicateKeyCode is the server error code for unique index violations.
const DuplicateKeyCode = 11000

// Error is a classified driver error.
//
// For duplicate keys Index names the violated unique index (e.g. "email_1")
// and Field its leading key (e.g. "email").
type Error struct {
	Code       Code
	Collection string
	Index      string
	Field      string
	Message    string
	driverErr  error
}

func (e *Error) Error() string {
	if e.Index != "" {
		return fmt.Sprintf("mongo %s on index %s: %s", e.Code, e.Index, e.Message)
	}
	return fmt.Sprintf("mongo %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
