package proposal

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dnfapi/internal/database"
	"dnfapi/internal/pkg/logger"
)

func openTestDB(t *testing.T, pool database.PoolConfig) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:proposal_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn, pool, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db, dsn, &Proposal{}))
	return db
}

func TestGormRepository_DuplicateEmailIsConflict(t *testing.T) {
	db := openTestDB(t, database.DefaultPool())
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Proposal{Name: "Ana", Email: "ana@x.com", Phone: "11"}))

	err := repo.Create(ctx, &Proposal{Name: "Other", Email: "ana@x.com", Phone: "22"})
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrConflict)

	var stored []Proposal
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "Ana", stored[0].Name)
	assert.Equal(t, "11", stored[0].Phone)
}

func TestGormRepository_ReleasesConnectionOnFailure(t *testing.T) {
	db := openTestDB(t, database.PoolConfig{MaxOpenConns: 1})
	repo := NewRepository(db)

	require.NoError(t, repo.Create(context.Background(), &Proposal{Name: "Ana", Email: "ana@x.com", Phone: "11"}))
	for i := 0; i < 3; i++ {
		err := repo.Create(context.Background(), &Proposal{Name: "Ana", Email: "ana@x.com", Phone: "11"})
		require.ErrorIs(t, err, database.ErrConflict)
	}

	// With a single connection in the pool this only succeeds if every failed
	// insert gave its connection back.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, repo.Create(ctx, &Proposal{Name: "Bia", Email: "bia@x.com", Phone: "33"}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}

func TestGormRepository_DefaultsOptionalColumns(t *testing.T) {
	db := openTestDB(t, database.DefaultPool())
	repo := NewRepository(db)

	p := &Proposal{Name: "Ana", Email: "ana@x.com", Phone: "11"}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.NotZero(t, p.ID)

	var stored Proposal
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, "", stored.Company)
	assert.Equal(t, "", stored.Message)
	assert.False(t, stored.CreatedAt.IsZero())
}
