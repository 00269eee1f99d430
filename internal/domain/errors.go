package domain

import "errors"

var (
	// ErrNotFound is returned by stores when the target row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSourceExists is returned when registering an already-known source URL.
	ErrSourceExists = errors.New("source already exists")
)
