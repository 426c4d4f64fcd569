package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchemaOnce(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// second run is a no-op
	require.NoError(t, Migrate(db))

	for _, table := range []string{"cities", "packages", "hotels", "flights", "trains", "buses", "bookings"} {
		var count int64
		err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count, table)
	}

	var applied int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM migrations").Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	migrations, err := NewMigrationManager(db).LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "001_init", migrations[0].Name)
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}
