package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// maxUpdateAttempts bounds the read-mutate-write loop under contention.
const maxUpdateAttempts = 3

// VersionedRow is a pointer model carrying a row_version column.
type VersionedRow interface {
	comparable
	GetRowVersion() int64
	SetRowVersion(int64)
}

// LoadFunc reads the current row. A zero T means the row is gone.
type LoadFunc[T VersionedRow] func(ctx context.Context, id uuid.UUID) (T, error)

// WriteIfVersionFunc writes the row only while it still has the expected
// version, reporting the outcome through the command tag.
type WriteIfVersionFunc[T VersionedRow] func(ctx context.Context, row T, expected int64) (pgconn.CommandTag, error)

// UpdateVersioned loads the row, applies mutate and writes it back,
// reloading whenever another writer got there first. A missing row yields
// pgx.ErrNoRows; exhausting the attempts yields utils.ErrRowVersionConflict.
func UpdateVersioned[T VersionedRow](
	ctx context.Context,
	id uuid.UUID,
	load LoadFunc[T],
	write WriteIfVersionFunc[T],
	mutate func(T) error,
) error {
	var zero T
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		row, err := load(ctx, id)
		if err != nil {
			return err
		}
		if row == zero {
			return pgx.ErrNoRows
		}

		seen := row.GetRowVersion()
		if err := mutate(row); err != nil {
			return err
		}

		tag, err := write(ctx, row, seen)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 1 {
			row.SetRowVersion(seen + 1)
			return nil
		}
	}
	return fmt.Errorf("%w: too much contention updating %s", utils.ErrRowVersionConflict, id)
}

// rowLoader runs a single-row SELECT keyed by id and maps pgx.ErrNoRows
// to a zero T so callers can tell "missing" from "failed".
type rowLoader[T VersionedRow] struct {
	db    DB
	query string
	scan  func(pgx.Row) (T, error)
}

func (l rowLoader[T]) load(ctx context.Context, id uuid.UUID) (T, error) {
	return l.scan(l.db.QueryRow(ctx, l.query, id))
}
