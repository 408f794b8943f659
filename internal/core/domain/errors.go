package domain

import "errors"

var (
	ErrInvalidRequest     = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access required")
	ErrNotFound           = errors.New("user not found")

	ErrIdentityExists   = errors.New("user already exists")
	ErrIdentityCreation = errors.New("failed to create user")
	ErrProfileUpdate    = errors.New("user created but failed to set role")
	ErrClientRecord     = errors.New("user created but failed to save client data")
	ErrDeletionFailed   = errors.New("failed to delete user")
)
