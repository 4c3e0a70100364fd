package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"onboardly/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbName := "mem_" + uuid.New().String()
	db, err := Open("file:"+dbName+"?mode=memory&cache=shared", true)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { Close(db) })
	return db
}

func TestLeadStore(t *testing.T) {
	db := setupTestDB(t)
	leads := NewLeadStore(db)
	ctx := context.Background()

	t.Run("Empty list", func(t *testing.T) {
		got, err := leads.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Create assigns ids in order", func(t *testing.T) {
		first := &models.Lead{Name: "Alex Johnson", Email: "alex@startup.com", Phone: "(123) 456-7890"}
		second := &models.Lead{Name: "Sarah Chen", Email: "sarah@neurotech.ai", Phone: "555-010-9999"}
		require.NoError(t, leads.Create(ctx, first))
		require.NoError(t, leads.Create(ctx, second))
		assert.NotZero(t, first.ID)
		assert.Greater(t, second.ID, first.ID)

		got, err := leads.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Alex Johnson", got[0].Name)
		assert.Equal(t, "sarah@neurotech.ai", got[1].Email)
	})

	t.Run("Table name", func(t *testing.T) {
		assert.True(t, db.Migrator().HasTable("lead"))
	})
}

func TestDialector(t *testing.T) {
	assert.Equal(t, "postgres", dialector("postgres://u:p@localhost:5432/leads").Name())
	assert.Equal(t, "postgres", dialector("postgresql://u:p@localhost:5432/leads").Name())
	assert.Equal(t, "sqlite", dialector("onboardly.db").Name())
	assert.Equal(t, "sqlite", dialector("sqlite://onboardly.db").Name())
}
