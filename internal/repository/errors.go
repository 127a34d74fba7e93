package repository

import (
	"errors"

	"clinic-admin/internal/domain/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isDuplicateKeyError checks for a unique constraint violation, either
// translated by gorm or raised by PostgreSQL as code 23505.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// translateWriteError maps a unique index violation on field to DuplicateKey
// and anything else to StorageFailure.
func translateWriteError(err error, field string) error {
	if err == nil {
		return nil
	}
	if isDuplicateKeyError(err) {
		return apperror.DuplicateKey(field, field+" already exists")
	}
	return apperror.Storage(err)
}
