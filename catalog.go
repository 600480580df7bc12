package rawimg

import (
	"crypto/sha1"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog is a SQLite database recording every raw image written.
type Catalog struct {
	db *sql.DB
}

// Entry describes a single file recorded in the Catalog.
type Entry struct {
	ID      int64
	Name    string
	SHA1    string
	Size    int64
	Created time.Time
}

// NewCatalog opens the catalog database in file, creating it if necessary.
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS output (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, size INTEGER NOT NULL, created DATETIME NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// OpenCatalog opens an existing catalog database in file. Unlike NewCatalog
// it returns an error if file doesn't exist.
func OpenCatalog(file string) (*Catalog, error) {
	if _, err := os.Stat(file); err != nil {
		return nil, err
	}
	return NewCatalog(file)
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record stores the name, size and SHA-1 of b, replacing any previous entry
// with the same name.
func (c *Catalog) Record(name string, b []byte) error {
	sha := fmt.Sprintf("%X", sha1.Sum(b))
	if _, err := c.db.Exec("INSERT OR REPLACE INTO output (name, sha1, size, created) VALUES (?, ?, ?, ?)", name, sha, len(b), time.Now().UTC()); err != nil {
		return err
	}
	return nil
}

// List returns every entry in the catalog ordered by name.
func (c *Catalog) List() ([]Entry, error) {
	rows, err := c.db.Query("SELECT id, name, sha1, size, created FROM output ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.SHA1, &e.Size, &e.Created); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
