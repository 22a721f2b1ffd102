package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

func TestUpdateVersionedReloadsAfterConflict(t *testing.T) {
	stored := &models.Property{Title: "old"}
	stored.RowVersion = 1

	writes := 0
	load := func(ctx context.Context, id uuid.UUID) (*models.Property, error) {
		cp := *stored
		return &cp, nil
	}
	write := func(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error) {
		writes++
		if writes == 1 {
			// a concurrent writer bumped the version first
			stored.RowVersion++
			return pgconn.CommandTag("UPDATE 0"), nil
		}
		if expected != stored.RowVersion {
			return pgconn.CommandTag("UPDATE 0"), nil
		}
		stored = p
		return pgconn.CommandTag("UPDATE 1"), nil
	}

	err := UpdateVersioned(context.Background(), uuid.New(), load, write, func(p *models.Property) error {
		p.Title = "new"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, writes)
	assert.Equal(t, "new", stored.Title)
	assert.Equal(t, int64(3), stored.RowVersion)
}

func TestUpdateVersionedMissingRow(t *testing.T) {
	load := func(ctx context.Context, id uuid.UUID) (*models.Property, error) { return nil, nil }
	write := func(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error) {
		t.Fatal("write must not run for a missing row")
		return nil, nil
	}
	err := UpdateVersioned(context.Background(), uuid.New(), load, write, func(*models.Property) error { return nil })
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUpdateVersionedMutateErrorStopsWrite(t *testing.T) {
	load := func(ctx context.Context, id uuid.UUID) (*models.Profile, error) { return &models.Profile{}, nil }
	write := func(ctx context.Context, p *models.Profile, expected int64) (pgconn.CommandTag, error) {
		t.Fatal("write must not run after mutate fails")
		return nil, nil
	}
	err := UpdateVersioned(context.Background(), uuid.New(), load, write, func(*models.Profile) error {
		return utils.ErrForbidden
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestUpdateVersionedGivesUp(t *testing.T) {
	load := func(ctx context.Context, id uuid.UUID) (*models.Property, error) { return &models.Property{}, nil }
	write := func(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error) {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	err := UpdateVersioned(context.Background(), uuid.New(), load, write, func(*models.Property) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too much contention")
	assert.ErrorIs(t, err, utils.ErrRowVersionConflict)
}
