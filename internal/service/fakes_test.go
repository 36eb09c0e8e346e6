package service

import (
	"context"
	"sync"

	"covid_dashboard/internal/models"
	"covid_dashboard/internal/repository"
)

type fakeEventRepo struct {
	mu        sync.Mutex
	appended  []models.RefreshEvent
	appendErr error

	gotQuery repository.EventQuery
	events   []models.RefreshEvent
	listErr  error
	calls    int
}

func (f *fakeEventRepo) Append(_ context.Context, e models.RefreshEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(_ context.Context, q repository.EventQuery) ([]models.RefreshEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotQuery = q
	return f.events, f.listErr
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

type fakeSnapshotRepo struct {
	mu      sync.Mutex
	saved   []models.Snapshot
	saveErr error
	stored  models.Snapshot
	loadErr error
}

func (f *fakeSnapshotRepo) Save(_ context.Context, s models.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, s)
	return f.saveErr
}

func (f *fakeSnapshotRepo) Load(context.Context) (models.Snapshot, error) {
	return f.stored, f.loadErr
}

type fakeFetcher struct {
	mu    sync.Mutex
	ds    models.Dataset
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(context.Context) (models.Dataset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.ds, f.err
}

func (f *fakeFetcher) URL() string { return "http://feed.test/timeseries.json" }

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
