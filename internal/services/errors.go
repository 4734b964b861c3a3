package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors the handler layer maps to HTTP statuses.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	ErrInvalid  = errors.New("invalid request")
)

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

func conflict(what string) error {
	return fmt.Errorf("%s %w", what, ErrConflict)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}

// translateNotFound converts a gorm record-not-found error into the service
// sentinel so handlers can answer 404 without importing gorm.
func translateNotFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return err
}
