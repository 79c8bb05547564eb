// Package definition keeps term definitions: a durable store and the lookup
// chain that consults it before the network dictionary.
package definition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=store.go -destination=../mocks/definition/mock_store.go -package=mock_definition

// Store is the durable term → definition cache.
type Store interface {
	// Get returns false when term has no stored definition.
	Get(ctx context.Context, term string) (string, bool, error)
	// Put inserts or replaces the definition of term.
	Put(ctx context.Context, term, definition string) error
}

// Entry is one row of the term_cache table.
type Entry struct {
	Term       string `db:"term" yaml:"term"`
	Definition string `db:"definition" yaml:"definition"`
}

const tableName = "term_cache"

// SQLStore implements Store on top of sqlite, MySQL or PostgreSQL.
type SQLStore struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
	dialect string
}

// NewSQLStore creates a SQLStore. The SQL dialect follows db.DriverName().
func NewSQLStore(db *sqlx.DB) *SQLStore {
	dialect := db.DriverName()
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if isPostgres(dialect) {
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return &SQLStore{
		db:      db,
		builder: builder,
		dialect: dialect,
	}
}

func isPostgres(driverName string) bool {
	return driverName == "pgx" || driverName == "postgres"
}

// EnsureSchema creates the term_cache table if it does not exist.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS term_cache (term TEXT PRIMARY KEY, definition TEXT)`
	if s.dialect == "mysql" {
		// MySQL cannot index an unbounded TEXT primary key
		query = `CREATE TABLE IF NOT EXISTS term_cache (term VARCHAR(255) NOT NULL PRIMARY KEY, definition TEXT) DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin`
	}
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("db.ExecContext(create term_cache) > %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, term string) (string, bool, error) {
	query, args, err := s.builder.
		Select("definition").
		From(tableName).
		Where(sq.Eq{"term": term}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build select term_cache > %w", err)
	}

	var definition sql.NullString
	err = s.db.GetContext(ctx, &definition, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("db.GetContext(term_cache) > %w", err)
	}
	if !definition.Valid {
		return "", false, nil
	}
	return definition.String, true, nil
}

func (s *SQLStore) Put(ctx context.Context, term, definition string) error {
	var insert sq.InsertBuilder
	if isPostgres(s.dialect) {
		insert = s.builder.
			Insert(tableName).
			Columns("term", "definition").
			Values(term, definition).
			Suffix("ON CONFLICT (term) DO UPDATE SET definition = EXCLUDED.definition")
	} else {
		insert = s.builder.
			Replace(tableName).
			Columns("term", "definition").
			Values(term, definition)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert term_cache > %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db.ExecContext(upsert term_cache) > %w", err)
	}
	return nil
}

// All returns every stored entry ordered by term.
func (s *SQLStore) All(ctx context.Context) ([]Entry, error) {
	query, args, err := s.builder.
		Select("term", "definition").
		From(tableName).
		OrderBy("term").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select term_cache > %w", err)
	}

	entries := []Entry{}
	if err := s.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(term_cache) > %w", err)
	}
	return entries, nil
}
