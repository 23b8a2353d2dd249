// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperrors defines the closed error taxonomy shared by every
// subsystem of the application.
//
// Domain code raises *Error values tagged with a Kind; the HTTP layer maps
// each Kind to a fixed user-facing message and status code, so the same
// category always produces the same response regardless of where it
// originated. The technical message and wrapped cause are only ever written
// to the operational log.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind labels an error with its category from the closed taxonomy.
type Kind string

const (
	KindDatabase   Kind = "database"
	KindProduct    Kind = "product"
	KindOrder      Kind = "order"
	KindPayment    Kind = "payment"
	KindAuth       Kind = "auth"
	KindFile       Kind = "file"
	KindConnection Kind = "connection"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindGeneral    Kind = "general"
)

// Error is a categorised application failure.
//
// Message is the technical description intended for the operational log,
// never for the response body. Details carries optional field-level context
// (populated for validation failures and echoed to the client).
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Err     error
}

// Error implements the error interface. The string includes the wrapped
// cause when present; it is log-facing, not user-facing.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs a categorised error with a technical message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs a categorised error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation constructs a validation error carrying field-level details
// (e.g. {"field": "email", "message": "invalid format"}).
func Validation(message string, details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// KindOf resolves the taxonomy category of any error. Errors that do not
// carry a *Error anywhere in their chain fall back to KindGeneral, the
// catch-all for unclassified failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindGeneral
}

// DetailsOf returns the field-level details attached to err, or nil when the
// chain carries none.
func DetailsOf(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}
