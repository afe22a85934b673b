package localstore

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite implementación del Store sobre un archivo SQLite embebido
// (driver sin CGo). Una tabla clave/valor es suficiente: cada bucket es
// una fila con la colección JSON completa.
type SQLite struct {
	db        *sql.DB
	writeLock sync.Mutex // el driver no soporta escrituras concurrentes
}

var _ Store = (*SQLite)(nil)

// NewSQLite abre (o crea) la base local y prepara el esquema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir db local: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db local: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("busy_timeout: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS buckets (
			bucket     TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	db.SetConnMaxLifetime(5 * time.Minute)
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(bucket string) ([]byte, bool, error) {
	var raw []byte
	err := s.db.QueryRow("SELECT value FROM buckets WHERE bucket = ?", bucket).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("leer bucket: %w", err)
	}
	return raw, true, nil
}

func (s *SQLite) Set(bucket string, value []byte) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()
	_, err := s.db.Exec(`
		INSERT INTO buckets (bucket, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(bucket) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		bucket, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("escribir bucket: %w", err)
	}
	return nil
}

func (s *SQLite) Remove(bucket string) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()
	if _, err := s.db.Exec("DELETE FROM buckets WHERE bucket = ?", bucket); err != nil {
		return fmt.Errorf("borrar bucket: %w", err)
	}
	return nil
}

// Close cierra la base local.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("cerrar db local: %w", err)
	}
	return nil
}
