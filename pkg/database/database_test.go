package database

import (
	"testing"

	"learnhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedCreatesAdmin(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	var admin model.User
	require.NoError(t, db.Where("role = ?", model.Admin).First(&admin).Error)
	assert.Equal(t, defaultAdminEmail, admin.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(defaultAdminPassword)))
}

func TestSeedIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedSkipsWhenAdminExists(t *testing.T) {
	db := newTestDB(t)

	existing := &model.User{Name: "Ops", Email: "ops@example.com", Password: "x", Role: model.Admin}
	require.NoError(t, db.Create(existing).Error)

	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
