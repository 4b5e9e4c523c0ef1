package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound signals that no row matched the given id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
