package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"covid_dashboard/internal/models"
)

// sqliteTimeLayout is how timestamps are written so that text comparison orders them.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// ErrUsersExist is returned by Authorization.Create once any operator exists.
var ErrUsersExist = errors.New("an operator account already exists")

type Authorization interface {
	// Create inserts the first operator. The emptiness check and the insert are
	// one statement, so concurrent callers cannot both succeed.
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// SnapshotRepo persists the last successfully fetched dataset.
type SnapshotRepo interface {
	Save(ctx context.Context, s models.Snapshot) error
	Load(ctx context.Context) (models.Snapshot, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.RefreshEvent) error
	List(ctx context.Context, q EventQuery) ([]models.RefreshEvent, error)
}

// EventQuery filters the refresh log. Zero values disable a condition.
type EventQuery struct {
	From  time.Time
	To    time.Time
	Type  string
	Limit int
}

type Repository struct {
	Snapshots SnapshotRepo
	Events    EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Snapshots: NewSnapshotSQLite(db),
		Events:    NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
