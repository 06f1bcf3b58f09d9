package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert collides with a unique index.
var ErrDuplicate = errors.New("duplicate key")

// translate maps gorm errors onto the repository sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
