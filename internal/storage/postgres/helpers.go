package postgres

import (
	"errors"

	"hr-backend/internal/storage"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pqArray converts a plain string slice to the array type the text[] columns
// are declared with.
func pqArray(s []string) pq.StringArray {
	return pq.StringArray(s)
}

// translateError maps gorm errors to the storage sentinel errors. Relies on
// the connection being opened with TranslateError so unique-constraint
// violations surface as gorm.ErrDuplicatedKey.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return storage.ErrConflict
	}
	return err
}
