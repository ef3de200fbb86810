package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Product{}))
	return db
}

func TestCategoryFindByName(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCategoryRepo(db)

	require.NoError(t, repo.Create(&model.Category{Name: "Hoodies", Type: "apparel"}))

	found, err := repo.FindByName("Hoodies")
	require.NoError(t, err)
	assert.Equal(t, "Hoodies", found.Name)

	missing, err := repo.FindByName("Socks")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, missing)
}
