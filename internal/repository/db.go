package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"food-delivery-api/pkg/apierror"
)

// DBTX is the subset of the pgx pool the repositories use.
// *pgxpool.Pool, pgx.Tx and pgxmock pools all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// classify turns driver errors into API errors where the store itself
// enforces the rule, and wraps everything else with op.
func classify(err error, op string, notFound string, conflict string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apierror.NotFound(notFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apierror.Conflict(conflict).Wrap(err)
		case pgerrcode.ForeignKeyViolation:
			return apierror.Conflict("record is referenced by another record").Wrap(err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
