package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"covid_dashboard/internal/models"
	"covid_dashboard/internal/repository"
)

// LogFilter selects refresh events.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", FETCH_OK, FETCH_FAILED, SNAPSHOT_RESTORED
	Limit int       // 0 means defaultLogLimit
}

const (
	defaultLogLimit = 100
	maxLogLimit     = 1000
)

var (
	errInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	errUnknownEventType = errors.New("unknown event type")
)

var knownEventTypes = map[string]struct{}{
	models.EventFetchOK:          {},
	models.EventFetchFailed:      {},
	models.EventSnapshotRestored: {},
}

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// IsFilterError reports whether err was caused by an invalid LogFilter.
func IsFilterError(err error) bool {
	return errors.Is(err, errInvalidTimeRange) || errors.Is(err, errUnknownEventType)
}

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeFilter(f LogFilter) (repository.EventQuery, error) {
	q := repository.EventQuery{
		From:  normalizeToUTC(f.From),
		To:    normalizeToUTC(f.To),
		Type:  strings.ToUpper(strings.TrimSpace(f.Type)),
		Limit: f.Limit,
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return repository.EventQuery{}, errInvalidTimeRange
	}
	if q.Type != "" {
		if _, ok := knownEventTypes[q.Type]; !ok {
			return repository.EventQuery{}, errUnknownEventType
		}
	}
	switch {
	case q.Limit <= 0:
		q.Limit = defaultLogLimit
	case q.Limit > maxLogLimit:
		q.Limit = maxLogLimit
	}
	return q, nil
}

// List returns matching events, newest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.RefreshEvent, error) {
	q, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, q)
}
