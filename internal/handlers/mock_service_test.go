package handlers

import (
	"context"
	"net/http"
	"sync"

	"covid_dashboard/internal/dashboard"
	"covid_dashboard/internal/models"
	"covid_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastGenUsername    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, _ string) (int, error) {
	m.lastSignUpUsername = username
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(_ context.Context, username, _ string) (string, error) {
	m.lastGenUsername = username
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockDataset struct {
	snap       models.Snapshot
	refreshErr error
	status     service.DatasetStatus
	refreshes  int
}

func (m *mockDataset) Current(context.Context) (models.Snapshot, error) { return m.snap, nil }

func (m *mockDataset) Refresh(context.Context) (models.Snapshot, error) {
	m.refreshes++
	if m.refreshErr != nil {
		return models.Snapshot{}, m.refreshErr
	}
	return m.snap, nil
}

func (m *mockDataset) Restore(context.Context) (bool, error) { return false, nil }
func (m *mockDataset) Status() service.DatasetStatus         { return m.status }

type mockDashboard struct {
	mu sync.Mutex

	vm        dashboard.ViewModel
	summary   dashboard.Summary
	countries []string
	chart     dashboard.Chart
	rangeView dashboard.RangeView
	err       error

	lastQuery   service.DashboardQuery
	lastCountry string
	lastRange   dashboard.RangeChange
}

func (m *mockDashboard) View(_ context.Context, q service.DashboardQuery) (dashboard.ViewModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastQuery = q
	return m.vm, m.err
}

func (m *mockDashboard) Summary(context.Context) (dashboard.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary, m.err
}

func (m *mockDashboard) Countries(context.Context) ([]string, error) {
	return m.countries, m.err
}

func (m *mockDashboard) Series(_ context.Context, country string, r dashboard.RangeChange) (dashboard.Chart, error) {
	m.lastCountry = country
	m.lastRange = r
	return m.chart, m.err
}

func (m *mockDashboard) Range(context.Context) (dashboard.RangeView, error) {
	return m.rangeView, m.err
}

func (m *mockDashboard) setSummary(s dashboard.Summary, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summary, m.err = s, err
}

type mockEventLog struct {
	resp   []models.RefreshEvent
	err    error
	last   service.LogFilter
	called int
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.RefreshEvent, error) {
	m.called++
	m.last = f
	return m.resp, m.err
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil).InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func newRequest(method, target string, header http.Header) *http.Request {
	req, _ := http.NewRequest(method, target, nil)
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
