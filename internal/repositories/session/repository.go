// Package session persists a hero's selection between runs
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/smkun/MarvelPowers/internal/repositories/session Repository

import (
	"context"

	"github.com/smkun/MarvelPowers/internal/entities"
)

// Repository defines the interface for session persistence. Every error it
// returns carries errors.KindPersistence.
type Repository interface {
	// Save writes the record, replacing any session with the same name
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.IO when the session cannot be written
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads a session
	// Returns errors.NotFound if the session does not exist
	// Returns errors.Malformed if the stored data is not a JSON object
	// Returns errors.IO for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// List returns the names of the stored sessions, sorted
	// Returns errors.IO for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a session
	// Returns errors.NotFound if the session does not exist
	// Returns errors.IO for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a session
type SaveInput struct {
	// Name is a file path for the file backend and a key for redis
	Name   string
	Record entities.Record
}

// SaveOutput defines the output of saving a session
type SaveOutput struct {
	// Location is where the session was written
	Location string
}

// LoadInput defines the input for loading a session
type LoadInput struct {
	Name string
}

// LoadOutput defines the output of loading a session
type LoadOutput struct {
	Location string
	Record   entities.Record
}

// ListInput defines the input for listing sessions
type ListInput struct{}

// ListOutput defines the output of listing sessions
type ListOutput struct {
	Names []string
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output of deleting a session
type DeleteOutput struct{}
