package postgres

import (
	"errors"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// notFound maps pgx.ErrNoRows to domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// isUUID reports whether id can match a uuid primary key. Path ids are
// user input, and a malformed one would fail the query with 22P02.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// dateArg renders a DATE parameter as YYYY-MM-DD, or NULL.
func dateArg(d *domain.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

func scanDate(t *time.Time) *domain.Date {
	return domain.DatePtr(t)
}
