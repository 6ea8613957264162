package sqlbind

import (
	"context"
	"database/sql"
	"log/slog"
)

// Executor performs SQL queries.
// It's an interface accepted by NewDB.
// Both sql.DB, sql.Conn and sql.Tx can be passed as executor.
type Executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// ContextExecutor performs SQL queries with context.
// Both sql.DB, sql.Conn and sql.Tx can be passed as context executor.
type ContextExecutor interface {
	Executor

	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

/*
DB renders templates and runs the resulting statements on an Executor.

	db := sqlbind.NewDB(sqlDB, sqlbind.MySQL)
	_, err := db.Exec(ctx, "UPDATE users SET ?a WHERE id = ?d{ AND block = ?d}",
		sqlbind.M{"name": "Jack"}, 42, sqlbind.Skip())

Rendered statements carry no driver arguments: every value is inlined.
*/
type DB struct {
	db      Executor
	dialect *Dialect
	logger  *slog.Logger
}

// NewDB wraps an Executor. A nil dialect selects the default one
// at the time a template is rendered.
func NewDB(db Executor, dialect *Dialect) *DB {
	return &DB{db: db, dialect: dialect}
}

// WithLogger sets a logger rendered statements are logged to at debug level.
func (db *DB) WithLogger(logger *slog.Logger) *DB {
	db.logger = logger
	return db
}

// Dialect returns the dialect templates are rendered with.
func (db *DB) Dialect() *Dialect {
	if db.dialect == nil {
		return DefaultDialect()
	}
	return db.dialect
}

// Skip returns the skip marker. See Skip.
func (db *DB) Skip() Value {
	return Skip()
}

// BuildQuery renders a template without running it.
func (db *DB) BuildQuery(template string, params ...interface{}) (string, error) {
	query, err := db.Dialect().Render(template, params...)
	if db.logger != nil {
		if err != nil {
			db.logger.Warn("render failed", "template", template, "params", len(params), "error", err)
		} else {
			db.logger.Debug("rendered", "template", template, "params", len(params), "sql", query)
		}
	}
	return query, err
}

// Query renders a template and executes the statement.
// For every row of a returned dataset it calls a handler function.
func (db *DB) Query(ctx context.Context, handler func(rows *sql.Rows) error, template string, params ...interface{}) error {
	query, err := db.BuildQuery(template, params...)
	if err != nil {
		return err
	}

	var rows *sql.Rows
	if ctxExecutor, ok := db.db.(ContextExecutor); ok && ctx != nil {
		rows, err = ctxExecutor.QueryContext(ctx, query)
	} else {
		rows, err = db.db.Query(query)
	}
	if err != nil {
		return err
	}

	// Iterate through rows of returned dataset
	for rows.Next() {
		if err = handler(rows); err != nil {
			break
		}
	}
	// Check for errors during rows "Close".
	// This may be more important if multiple statements are executed
	// in a single batch and rows were written as well as read.
	if closeErr := rows.Close(); closeErr != nil {
		return closeErr
	}

	// Check for handler error.
	if err != nil {
		return err
	}

	// Check for errors during row iteration.
	return rows.Err()
}

// QueryRow renders a template, executes the statement and
// scans the first row to dest.
func (db *DB) QueryRow(ctx context.Context, dest []interface{}, template string, params ...interface{}) error {
	query, err := db.BuildQuery(template, params...)
	if err != nil {
		return err
	}

	var row *sql.Row
	if ctxExecutor, ok := db.db.(ContextExecutor); ok && ctx != nil {
		row = ctxExecutor.QueryRowContext(ctx, query)
	} else {
		row = db.db.QueryRow(query)
	}

	return row.Scan(dest...)
}

// Exec renders a template and executes the statement.
func (db *DB) Exec(ctx context.Context, template string, params ...interface{}) (sql.Result, error) {
	query, err := db.BuildQuery(template, params...)
	if err != nil {
		return nil, err
	}

	if ctxExecutor, ok := db.db.(ContextExecutor); ok && ctx != nil {
		return ctxExecutor.ExecContext(ctx, query)
	}

	return db.db.Exec(query)
}
