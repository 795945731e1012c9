package services

import (
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors that handlers map to user-facing responses. Everything
// else coming out of a service is an opaque persistence failure and gets the
// generic message for its action.
var (
	ErrNotFound           = errors.New("record not found")
	ErrSectionNameTaken   = errors.New("section name already exists")
	ErrSectionNotFound    = errors.New("section not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Postgres error code for unique constraint violations — the one persistence
// failure that is distinguishable and remapped to a field error.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
