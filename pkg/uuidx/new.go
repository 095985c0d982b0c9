package uuidx

import "github.com/google/uuid"

// New generates a new UUID using the version 7 format and returns it.
// Version 7 ids sort by creation time, which keeps subscription ids in registry order.
// It panics if the UUID generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString generates a new version 7 UUID and returns it as a string.
func NewString() string {
	return New().String()
}

// Short returns the last 12 hex digits of id, the random tail of a version 7 UUID.
// It is meant for log lines, not for identity.
func Short(id uuid.UUID) string {
	s := id.String()
	return s[len(s)-12:]
}
