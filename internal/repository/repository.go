package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/groundtruth/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of pgxpool.Pool the repository needs.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchPendingFixes(ctx context.Context, limit int) ([]models.Fix, error)
	UpdateFixNED(ctx context.Context, fixID int, altitude float64, ned models.NED) error
	IncrementFailureCount(ctx context.Context, fixID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
