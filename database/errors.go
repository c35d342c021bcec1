package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned by writes that matched no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate document")
	// ErrMalformedID is returned for ids that are not UUIDs.
	ErrMalformedID = errors.New("malformed id")
)

// NewID returns a fresh document id.
func NewID() string {
	return uuid.NewString()
}

// CheckID rejects ids that could not have been produced by NewID.
func CheckID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w %q", ErrMalformedID, id)
	}
	return nil
}

// WrapWriteError maps duplicate-key failures to ErrDuplicate.
func WrapWriteError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
