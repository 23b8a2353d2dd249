// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the closed set of account roles known to the authorization layer.
// Role checks are plain set-membership tests; there is no hierarchy or
// inheritance between roles.
type Role string

const (
	// RoleCustomer is the default role assigned to shoppers.
	RoleCustomer Role = "customer"

	// RoleAdmin grants access to administrative endpoints (catalog
	// management, order oversight, operational tooling).
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
//
// Once attached to a request context by the auth middleware the value is a
// read-only snapshot: downstream handlers read it but never mutate it.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// FirstName is the user's given name. Non-sensitive, may be shown in UI.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`

	// Role determines which role-gated routes the user may access.
	Role Role `json:"role"`

	// Active reports whether the account is enabled. Only active users are
	// ever attached to a request context; a deactivated account is
	// indistinguishable from a missing one at the API boundary.
	Active bool `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns the display name composed of first and last name.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
