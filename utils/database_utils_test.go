package utils

import (
	"path/filepath"
	"testing"

	"github.com/Luismorlan/choirmux/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTempDB(t *testing.T) {
	db, dbName := CreateTempDB(t)
	assert.Equal(t, TestDBPrefix+"cache.db", dbName)

	for _, table := range []interface{}{
		&model.User{}, &model.Music{}, &model.MusicCategory{}, &model.SocialPost{},
		&model.Comment{}, &model.Reply{}, &model.News{}, &model.NewsFile{},
		&model.NewsLink{}, &model.AppTheme{}, &model.UIElement{},
	} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestOpenDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	db, err := OpenDB(SqliteDriver, path)
	require.NoError(t, err)
	require.NoError(t, DatabaseSetupAndMigration(db))
	conn, err := db.DB()
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)

	_, err = OpenDB("mysql", "whatever")
	assert.Error(t, err)
}
