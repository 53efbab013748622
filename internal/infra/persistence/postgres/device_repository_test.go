package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements without a live database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=drivesafe dbname=drivesafe sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestDeviceRepository_DeactivateByTokens(t *testing.T) {
	db := newDryRunDB(t)

	var (
		statement string
		vars      []any
	)
	err := db.Callback().Update().After("gorm:update").Register("test:capture", func(tx *gorm.DB) {
		statement = tx.Statement.SQL.String()
		vars = tx.Statement.Vars
	})
	require.NoError(t, err)

	count, err := NewDeviceRepository(db).DeactivateByTokens(context.Background(), []string{"stale-1", "stale-2"})
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.Contains(t, statement, `UPDATE "user_devices" SET "is_active"=`)
	assert.Contains(t, statement, "fcm_token IN (")
	assert.Contains(t, statement, "is_active = ")
	assert.Contains(t, statement, `"deleted_at" IS NULL`)
	assert.Contains(t, vars, "stale-1")
	assert.Contains(t, vars, "stale-2")
}

func TestDeviceRepository_DeactivateByTokens_NoTokens(t *testing.T) {
	count, err := NewDeviceRepository(nil).DeactivateByTokens(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, count)
}
