package postgres

import (
	"localia/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL error codes this layer branches on. Classification happens
// here, once; everything above works with repository sentinels.
const (
	pgCodeUniqueViolation   = "23505"
	pgCodeUndefinedTable    = "42P01"
	pgCodeUndefinedFunction = "42883"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == pgCodeUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// classifyRegionError maps storage-level failures of the region queries to
// the sentinels the location validator branches on. Any other error is
// returned unchanged.
func classifyRegionError(err error) error {
	switch pgErrorCode(err) {
	case pgCodeUndefinedFunction:
		return errors.Wrap(repository.ErrFunctionMissing, err.Error())
	case pgCodeUndefinedTable:
		return errors.Wrap(repository.ErrStorageNotProvisioned, err.Error())
	}

	return err
}
