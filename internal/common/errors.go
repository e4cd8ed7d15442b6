// Package common defines the sentinel errors shared across the repository,
// service and transport layers. Callers match them with errors.Is; the HTTP
// layer maps each one to its fixed status code.
package common

import "errors"

var (
	// ErrAccessDenied - caller lacks authorization for the operation, or the
	// requested record exists but is not accessible.
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyExists - vault creation attempted by an owner that already has one.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound - a required vault does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPrice - access fee outside the configured bounds.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidInput - malformed field lengths, zero indices, self-access
	// attempts, or an out-of-range chain height.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRecordNotFound - record index not allocated, or no record at an
	// allocated index.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInsufficientBalance - the value transfer collaborator refused the
	// payment; the whole operation rolls back.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnauthorized - missing or invalid credentials at the transport layer.
	ErrUnauthorized = errors.New("unauthorized")
)
