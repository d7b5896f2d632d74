package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation    = errors.New("validation failed") // 400
	ErrNotFound      = errors.New("not found")         // 404
	ErrConflict      = errors.New("already exists")    // 409
	ErrNotAssociated = errors.New("is not associated") // 404, distinct from ErrNotFound
)

// asNotFound turns a gorm record-not-found into an ErrNotFound naming the
// entity, e.g. "user 5 not found". Any other error passes through unchanged.
func asNotFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d %w", entity, id, ErrNotFound)
	}
	return err
}
