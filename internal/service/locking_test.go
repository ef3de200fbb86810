package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"extremefit-api/internal/model"
)

func dryRunSession(t *testing.T, dialector gorm.Dialector) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(dialector, &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestLockForUpdateEmitsRowLockOnPostgres(t *testing.T) {
	db := dryRunSession(t, postgres.New(postgres.Config{
		DSN:                  "host=localhost user=app dbname=app",
		PreferSimpleProtocol: true,
	}))

	stmt := lockForUpdate(db).First(&model.Product{}, "id = ?", uuid.New()).Statement
	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")
}

func TestLockForUpdateSkipsSQLite(t *testing.T) {
	db := dryRunSession(t, sqlite.Open("file::memory:"))

	stmt := lockForUpdate(db).First(&model.Product{}, "id = ?", uuid.New()).Statement
	assert.NotContains(t, stmt.SQL.String(), "FOR UPDATE")
}
