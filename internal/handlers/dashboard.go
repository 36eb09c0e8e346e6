package handlers

import (
	"net/http"
	"time"

	"covid_dashboard/internal/dashboard"
	"covid_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// rangeQuery holds the optional from/to query parameters of the dashboard routes.
type rangeQuery struct {
	From *time.Time
	To   *time.Time
}

// parseRangeQuery reads ?from= and ?to=. An inverted range is accepted and
// yields empty series; only unparsable values are rejected.
func parseRangeQuery(c *gin.Context) (rangeQuery, bool) {
	var rq rangeQuery
	if qs := c.Query("from"); qs != "" {
		t, err := parseQueryDay(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return rangeQuery{}, false
		}
		rq.From = &t
	}
	if qs := c.Query("to"); qs != "" {
		t, err := parseQueryDay(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return rangeQuery{}, false
		}
		rq.To = &t
	}
	return rq, true
}

// @Summary      Health check
// @Description  Reports whether a dataset is loaded and how the last refresh went.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  statusOK,
		"dataset": h.services.Dataset.Status(),
	})
}

// @Summary      Dashboard view model
// @Description  Summary table, country list, selected chart and date-range inputs. Dates are YYYY-MM-DD or RFC3339; from > to gives empty series.
// @Tags         dashboard
// @Produce      json
// @Param        from     query  string  false  "Start of range"  example(2020-03-01)
// @Param        to       query  string  false  "End of range"    example(2020-06-30)
// @Param        country  query  string  false  "Country shown in the chart"  example(Italy)
// @Success      200  {object}  dashboard.ViewModel
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	rq, ok := parseRangeQuery(c)
	if !ok {
		return
	}
	country := c.Query("country")
	vm, err := h.services.Dashboard.View(c.Request.Context(), service.DashboardQuery{
		From:    rq.From,
		To:      rq.To,
		Country: country,
	})
	if err != nil {
		h.writeServiceError(c, "dashboard_view_failed", err, "country", country)
		return
	}
	c.JSON(http.StatusOK, vm)
}

// @Summary      Headline figures
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboard.Summary
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	sum, err := h.services.Dashboard.Summary(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, "dashboard_summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// @Summary      Country names in display order
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, countries"
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/countries [get]
func (h *Handler) getCountries(c *gin.Context) {
	countries, err := h.services.Dashboard.Countries(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, "dashboard_countries_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(countries),
		"countries": countries,
	})
}

// @Summary      Chart series of one country
// @Tags         dashboard
// @Produce      json
// @Param        country  path   string  true   "Country name"  example(Italy)
// @Param        from     query  string  false  "Start of range"  example(2020-03-01)
// @Param        to       query  string  false  "End of range"    example(2020-06-30)
// @Success      200  {object}  dashboard.Chart
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/series/{country} [get]
func (h *Handler) getSeries(c *gin.Context) {
	rq, ok := parseRangeQuery(c)
	if !ok {
		return
	}
	country := c.Param("country")
	chart, err := h.services.Dashboard.Series(c.Request.Context(), country, dashboard.RangeChange{From: rq.From, To: rq.To})
	if err != nil {
		h.writeServiceError(c, "dashboard_series_failed", err, "country", country)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// @Summary      Initial date-range inputs
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboard.RangeView
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/range [get]
func (h *Handler) getRange(c *gin.Context) {
	rv, err := h.services.Dashboard.Range(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, "dashboard_range_failed", err)
		return
	}
	c.JSON(http.StatusOK, rv)
}
