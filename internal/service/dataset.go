package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"covid_dashboard/internal/logger"
	"covid_dashboard/internal/models"
	"covid_dashboard/internal/repository"
	"covid_dashboard/internal/timeseries"
)

// ErrDatasetNotLoaded is returned until the first fetch or snapshot restore succeeds.
var ErrDatasetNotLoaded = errors.New("dataset not loaded yet")

// DatasetStatus describes the freshness of the store for health reporting.
type DatasetStatus struct {
	Loaded      bool      `json:"loaded"`
	SourceURL   string    `json:"source_url,omitempty"`
	FetchedAt   time.Time `json:"fetched_at,omitempty"`
	Countries   int       `json:"countries"`
	LastAttempt time.Time `json:"last_attempt,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
}

// DatasetService holds the current dataset. Readers get the snapshot by value and
// never see a partially built dataset: a refresh builds a new one and swaps it in.
type DatasetService struct {
	fetcher   Fetcher
	snapshots repository.SnapshotRepo
	events    repository.EventRepo
	log       *logger.Logger
	now       func() time.Time

	refreshMu sync.Mutex // one refresh at a time

	mu          sync.RWMutex
	current     models.Snapshot
	loaded      bool
	lastAttempt time.Time
	lastErr     error
}

func NewDatasetService(fetcher Fetcher, snapshots repository.SnapshotRepo, events repository.EventRepo, log *logger.Logger) *DatasetService {
	return &DatasetService{
		fetcher:   fetcher,
		snapshots: snapshots,
		events:    events,
		log:       log,
		now:       time.Now,
	}
}

// Current returns the latest snapshot or ErrDatasetNotLoaded.
func (s *DatasetService) Current(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return models.Snapshot{}, ErrDatasetNotLoaded
	}
	return s.current, nil
}

// Status reports whether data is loaded and how the last refresh went.
func (s *DatasetService) Status() DatasetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := DatasetStatus{
		Loaded:      s.loaded,
		SourceURL:   s.current.SourceURL,
		FetchedAt:   s.current.FetchedAt,
		Countries:   len(s.current.Dataset),
		LastAttempt: s.lastAttempt,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

// Refresh fetches the feed once. On failure the previous dataset stays in place,
// the failure is logged and recorded, and the error is returned.
func (s *DatasetService) Refresh(ctx context.Context) (models.Snapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	started := s.now()
	ds, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.recordAttempt(started, err)
		if s.log != nil {
			s.log.Errorw("dataset_refresh_failed", "url", s.fetcher.URL(), "err", err)
		}
		s.appendEvent(ctx, models.RefreshEvent{
			OccurredAt:  started,
			Type:        models.EventFetchFailed,
			Description: err.Error(),
			Metadata:    map[string]any{"url": s.fetcher.URL()},
		})
		return models.Snapshot{}, fmt.Errorf("refresh dataset: %w", err)
	}

	snap := models.Snapshot{
		Dataset:   ds,
		SourceURL: s.fetcher.URL(),
		FetchedAt: started.UTC(),
	}
	s.mu.Lock()
	s.current = snap
	s.loaded = true
	s.lastAttempt = started
	s.lastErr = nil
	s.mu.Unlock()

	persisted := true
	if err := s.snapshots.Save(ctx, snap); err != nil {
		persisted = false
		if s.log != nil {
			s.log.Warnw("snapshot_save_failed", "err", err)
		}
	}

	records := timeseries.RecordCount(ds)
	if s.log != nil {
		s.log.Infow("dataset_refreshed", "countries", len(ds), "records", records, "took", s.now().Sub(started))
	}
	s.appendEvent(ctx, models.RefreshEvent{
		OccurredAt:  started,
		Type:        models.EventFetchOK,
		Description: fmt.Sprintf("fetched %d countries", len(ds)),
		Metadata: map[string]any{
			"countries": len(ds),
			"records":   records,
			"persisted": persisted,
		},
	})
	return snap, nil
}

// Restore loads the persisted snapshot when nothing fresher is in memory.
// It reports whether a snapshot was installed.
func (s *DatasetService) Restore(ctx context.Context) (bool, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.IsZero() {
		return false, nil
	}

	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return false, nil
	}
	s.current = snap
	s.loaded = true
	s.mu.Unlock()

	if s.log != nil {
		s.log.Infow("snapshot_restored", "countries", len(snap.Dataset), "fetched_at", snap.FetchedAt)
	}
	s.appendEvent(ctx, models.RefreshEvent{
		Type:        models.EventSnapshotRestored,
		Description: fmt.Sprintf("restored snapshot fetched at %s", snap.FetchedAt.Format(time.RFC3339)),
		Metadata:    map[string]any{"countries": len(snap.Dataset), "source_url": snap.SourceURL},
	})
	return true, nil
}

func (s *DatasetService) recordAttempt(at time.Time, err error) {
	s.mu.Lock()
	s.lastAttempt = at
	s.lastErr = err
	s.mu.Unlock()
}

func (s *DatasetService) appendEvent(ctx context.Context, e models.RefreshEvent) {
	if err := s.events.Append(ctx, e); err != nil && s.log != nil {
		s.log.Warnw("refresh_event_append_failed", "type", e.Type, "err", err)
	}
}
