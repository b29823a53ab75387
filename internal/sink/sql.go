package sink

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/TomRegan/uuid"
)

const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS %s (
	id TEXT PRIMARY KEY,
	version INTEGER NOT NULL,
	created_at INTEGER NOT NULL
)`
	mysqlSchema = `CREATE TABLE IF NOT EXISTS %s (
	id CHAR(36) NOT NULL PRIMARY KEY,
	version TINYINT UNSIGNED NOT NULL,
	created_at BIGINT NOT NULL
)`
)

// SQLSink inserts each batch in a single transaction. created_at holds Unix
// milliseconds: the embedded time for version 1 UUIDs, otherwise the time of
// the write.
type SQLSink struct {
	db     *sql.DB
	insert string
	now    func() time.Time
}

// OpenSQLite opens (creating if needed) a SQLite database through the pure Go
// modernc driver and ensures table exists.
func OpenSQLite(ctx context.Context, dsn, table string) (*SQLSink, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return newSQLSink(ctx, db, sqliteSchema, table)
}

// OpenMySQL connects to MySQL using a go-sql-driver DSN and ensures table
// exists.
func OpenMySQL(ctx context.Context, dsn, table string) (*SQLSink, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return newSQLSink(ctx, db, mysqlSchema, table)
}

func newSQLSink(ctx context.Context, db *sql.DB, schema, table string) (*SQLSink, error) {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(schema, table)); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table %s: %w", table, err)
	}
	return &SQLSink{
		db:     db,
		insert: fmt.Sprintf("INSERT INTO %s (id, version, created_at) VALUES (?, ?, ?)", table),
		now:    time.Now,
	}, nil
}

func (s *SQLSink) Write(ctx context.Context, ids []uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := s.now()
	for _, id := range ids {
		created, err := id.Time()
		if err != nil {
			created = now
		}
		if _, err := stmt.ExecContext(ctx, id, int(id.Version()), created.UnixMilli()); err != nil {
			return fmt.Errorf("insert %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// DB exposes the underlying handle for queries.
func (s *SQLSink) DB() *sql.DB {
	return s.db
}

func (s *SQLSink) Close() error {
	return s.db.Close()
}
