// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrEmailAlreadyExists is returned by the repository when the unique
	// email index rejects a create.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
