package service

import "errors"

// Sentinel errors surfaced to the routing layer
var (
	// ErrForbidden is returned when a user tries to delete a blog it does not own
	ErrForbidden = errors.New("forbidden - you can only delete your own blog")
	// ErrNotFound is returned when an update targets a blog that does not exist
	ErrNotFound = errors.New("blog not found")
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid username or password")
)
