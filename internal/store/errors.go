package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// asConflict maps a unique-violation to ErrConflict, leaving other
// errors untouched.
func asConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}
