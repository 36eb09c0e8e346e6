package service

import (
	"context"
	"time"

	"covid_dashboard/internal/dashboard"
	"covid_dashboard/internal/logger"
	"covid_dashboard/internal/models"
	"covid_dashboard/internal/repository"

	"golang.org/x/text/language"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Dataset is the time-series store: the last good dataset plus its refresh lifecycle.
type Dataset interface {
	Current(ctx context.Context) (models.Snapshot, error)
	Refresh(ctx context.Context) (models.Snapshot, error)
	Restore(ctx context.Context) (bool, error)
	Status() DatasetStatus
}

// Dashboard renders view models from the current dataset.
type Dashboard interface {
	View(ctx context.Context, q DashboardQuery) (dashboard.ViewModel, error)
	Summary(ctx context.Context) (dashboard.Summary, error)
	Countries(ctx context.Context) ([]string, error)
	Series(ctx context.Context, country string, r dashboard.RangeChange) (dashboard.Chart, error)
	Range(ctx context.Context) (dashboard.RangeView, error)
}

// EventLog exposes the refresh history.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.RefreshEvent, error)
}

// Refresher re-fetches the dataset on an interval until ctx is canceled.
type Refresher interface {
	Run(ctx context.Context, interval time.Duration)
}

// Fetcher downloads a complete dataset.
type Fetcher interface {
	Fetch(ctx context.Context) (models.Dataset, error)
	URL() string
}

type Service struct {
	Dataset
	Dashboard
	EventLog
	Refresher
	Authorization
}

// Options carries the settings the services need from config.
type Options struct {
	Locale     language.Tag
	SigningKey string
	TokenTTL   time.Duration
	Log        *logger.Logger
}

func NewService(repos *repository.Repository, fetcher Fetcher, opts Options) *Service {
	data := NewDatasetService(fetcher, repos.Snapshots, repos.Events, opts.Log.Component("dataset"))
	return &Service{
		Dataset:       data,
		Dashboard:     NewDashboardService(data, opts.Locale),
		EventLog:      NewEventLogService(repos.Events),
		Refresher:     NewRefresherService(data, opts.Log.Component("refresher")),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
