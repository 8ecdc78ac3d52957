package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vibelearn/content-ingest/pkg/ingest"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements ingest.Repository using PostgreSQL.
//
// Expected schema:
//
//	CREATE TABLE content_record (
//	    id           UUID PRIMARY KEY,
//	    content_type TEXT NOT NULL,
//	    source       TEXT NOT NULL,
//	    title        TEXT NOT NULL DEFAULT '',
//	    file_size    BIGINT NOT NULL DEFAULT 0,
//	    status       TEXT NOT NULL,
//	    created_at   TIMESTAMPTZ NOT NULL
//	);
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) *Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{db: pool}
}

// handlePostgresError translates driver errors into readable failures
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("content record already exists")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

func (r *Repository) CreateContent(ctx context.Context, record *ingest.ContentRecord) error {
	query := `
		INSERT INTO content_record (
			id, content_type, source, title, file_size, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		record.ID, string(record.ContentType), record.Source,
		record.Title, record.FileSize, string(record.Status), record.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create content", err)
	}

	return nil
}

func (r *Repository) GetContent(ctx context.Context, id uuid.UUID) (*ingest.ContentRecord, error) {
	query := `
		SELECT id, content_type, source, title, file_size, status, created_at
		FROM content_record
		WHERE id = $1`

	var record ingest.ContentRecord
	var contentType, status string

	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID, &contentType, &record.Source,
		&record.Title, &record.FileSize, &status, &record.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ingest.ErrContentNotFound
		}
		return nil, r.handlePostgresError("get content", err)
	}

	record.ContentType = ingest.ContentType(contentType)
	record.Status = ingest.ContentStatus(status)
	return &record, nil
}

func (r *Repository) DeleteContent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM content_record WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete content", err)
	}
	if tag.RowsAffected() == 0 {
		return ingest.ErrContentNotFound
	}
	return nil
}
