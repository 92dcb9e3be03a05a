package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID indicates an id that is not a well-formed document id.
	ErrInvalidID = errors.New("invalid id")
	// ErrAlreadyExists indicates a uniqueness conflict, e.g. a taken userName.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials is returned when userName/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConcurrentModification is returned when a versioned save loses a race.
	ErrConcurrentModification = errors.New("document was modified concurrently")
)

// DatastoreError marks a failure raised by the persistence layer itself.
type DatastoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *DatastoreError) Error() string {
	return fmt.Sprintf("datastore %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *DatastoreError) Unwrap() error {
	return e.Err
}

// IsDatastore reports whether err originated in the persistence layer.
func IsDatastore(err error) bool {
	var dsErr *DatastoreError
	return errors.As(err, &dsErr) || errors.Is(err, ErrConcurrentModification)
}
