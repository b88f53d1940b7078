package repo

import (
	"math/rand"
	"os"
	"path"
	"strconv"

	"github.com/genemuffin/genemuffind/database"
)

// MockDB returns an in-memory sqlite db.
func MockDB() (database.Database, error) {
	db, err := NewSqliteDB(":memory:")
	if err != nil {
		return nil, err
	}
	if err := autoMigrateDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

// MockRepo returns a repo which uses a tmp data directory
// and in-memory database.
func MockRepo() (*Repo, error) {
	n := rand.Intn(1000000)
	dataDir := path.Join(os.TempDir(), "genemuffin-test", strconv.Itoa(n))
	return newRepo(dataDir, "", true)
}
