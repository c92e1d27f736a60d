// Package store implements the REPL history store, backed by a bolt
// database file.
package store

import (
	"time"

	bolt "go.etcd.io/bbolt"
	"src.smy.sh/pkg/logutil"
	"src.smy.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

var initDB = map[string]func(*bolt.Tx) error{}

// DBStore is the permanent interface to the database.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new store object backed by the named database file,
// creating the file and its tables as needed.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644,
		&bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	logger.Println("opened database", dbname)
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return err
			}
			logger.Println("did", name)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
