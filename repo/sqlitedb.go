package repo

import (
	"fmt"
	"path"
	"sync"

	"github.com/genemuffin/genemuffind/database"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // Import sqlite dialect
)

const dbName = "genemuffin.db"

// SqliteDB is an implementation of the Database interface using
// the gorm ORM with sqlite.
type SqliteDB struct {
	db  *gorm.DB
	mtx sync.RWMutex
}

// NewSqliteDB instantiates a new db which satisfies the Database interface.
func NewSqliteDB(dataDir string) (*SqliteDB, error) {
	pth := path.Join(dataDir, "datastore", dbName)
	if dataDir == ":memory:" {
		pth = dataDir
	}
	db, err := gorm.Open("sqlite3", pth)
	if err != nil {
		return nil, err
	}
	return &SqliteDB{db: db}, nil
}

// View invokes the passed function in the context of a managed
// read-only transaction.  Any errors returned from the user-supplied
// function are returned from this function.
func (s *SqliteDB) View(fn func(tx database.Tx) error) error {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return fn(&tx{dbtx: s.db})
}

// Update invokes the passed function in the context of a managed
// read-write transaction.  Any errors returned from the user-supplied
// function will cause the transaction to be rolled back and are
// returned from this function.  Otherwise, the transaction is committed
// when the user-supplied function returns a nil error.
func (s *SqliteDB) Update(fn func(tx database.Tx) error) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	dbtx := s.db.Begin()
	if err := fn(&tx{dbtx: dbtx, isForWrites: true}); err != nil {
		dbtx.Rollback()
		return err
	}
	return dbtx.Commit().Error
}

// Close cleanly shuts down the database and syncs all data.  It will
// block until all database transactions have been finalized (rolled
// back or committed).
func (s *SqliteDB) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.db.Close()
}

type tx struct {
	dbtx        *gorm.DB
	isForWrites bool
}

// Commit commits all changes that have been made to the database.
// Calling this function on a managed transaction will result in a panic.
func (t *tx) Commit() error {
	if !t.isForWrites {
		return nil
	}
	return t.dbtx.Commit().Error
}

// Rollback undoes all changes that have been made to the database.
// Calling this function on a managed transaction will result in a panic.
func (t *tx) Rollback() error {
	if !t.isForWrites {
		return nil
	}
	return t.dbtx.Rollback().Error
}

// Read returns the underlying sql database in a read-only mode so that
// queries can be made against it.
func (t *tx) Read() *gorm.DB {
	return t.dbtx
}

// Save will save the passed in model to the database. If it already exists
// it will be overridden.
func (t *tx) Save(model interface{}) error {
	if !t.isForWrites {
		return database.ErrReadOnly
	}
	return t.dbtx.Save(model).Error
}

// Update will update the given key to the value for the given model. The
// where map can be used to impose extra conditions on which specific model
// gets updated. The map key must be of the format "key = ?".
func (t *tx) Update(key string, value interface{}, where map[string]interface{}, model interface{}) error {
	if !t.isForWrites {
		return database.ErrReadOnly
	}
	db := t.dbtx.Model(model)
	for k, v := range where {
		db = db.Where(k, v)
	}
	return db.UpdateColumn(key, value).Error
}

// Delete will delete all models of the given type from the database where
// field == key.
func (t *tx) Delete(key string, value interface{}, where map[string]interface{}, model interface{}) error {
	if !t.isForWrites {
		return database.ErrReadOnly
	}
	db := t.dbtx.Model(model)
	for k, v := range where {
		db = db.Where(k, v)
	}
	return db.Where(fmt.Sprintf("%s = ?", key), value).Delete(model).Error
}

// Migrate will auto-migrate the database from any previous schema for this
// model to the current schema.
func (t *tx) Migrate(model interface{}) error {
	if !t.isForWrites {
		return database.ErrReadOnly
	}
	return t.dbtx.AutoMigrate(model).Error
}

var _ database.Database = (*SqliteDB)(nil)
var _ database.Tx = (*tx)(nil)
