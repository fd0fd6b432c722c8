package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres unique_violation, raised when a concurrent insert wins the race
// on one of the composite unique indexes.
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
