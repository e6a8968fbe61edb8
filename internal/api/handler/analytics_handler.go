package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aquasense/water-quality-api/internal/api/metrics"
	"github.com/aquasense/water-quality-api/internal/core/ports"
)

// AnalyticsHandler serves the dashboard aggregation endpoints.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// observe records the request duration for one analytics endpoint.
func observe(endpoint string) func() {
	start := time.Now()
	return func() {
		metrics.AnalyticsQueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// Statistics returns the dashboard card aggregates for the caller's scope.
//
// @Summary      Dashboard statistics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.StatisticsResult
// @Failure      401  {object}  errorResponse
// @Router       /analytics/api/statistics [get]
func (h *AnalyticsHandler) Statistics(c echo.Context) error {
	defer observe("statistics")()

	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Statistics(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// Trends returns the chart-ready per-date trend series.
//
// @Summary      Trend series
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.TrendSeries
// @Failure      401  {object}  errorResponse
// @Router       /analytics/api/water-quality-trends [get]
func (h *AnalyticsHandler) Trends(c echo.Context) error {
	defer observe("trends")()

	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	series, err := h.service.Trends(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, series)
}

// QualityDistribution returns the status histogram.
//
// @Summary      Quality distribution
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DistributionResult
// @Failure      401  {object}  errorResponse
// @Router       /analytics/api/quality-distribution [get]
func (h *AnalyticsHandler) QualityDistribution(c echo.Context) error {
	defer observe("distribution")()

	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	dist, err := h.service.QualityDistribution(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dist)
}

// LocationInsights returns the per-location research aggregates as a bare
// array.
//
// @Summary      Location insights
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.LocationInsight
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /analytics/api/location-insights [get]
func (h *AnalyticsHandler) LocationInsights(c echo.Context) error {
	defer observe("location_insights")()

	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	insights, err := h.service.LocationInsights(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	if insights == nil {
		insights = []ports.LocationInsight{}
	}

	return c.JSON(http.StatusOK, insights)
}

// UserStatistics returns per-role account aggregates as a bare array. Admin
// only.
//
// @Summary      User statistics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.RoleUserStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /analytics/api/user-statistics [get]
func (h *AnalyticsHandler) UserStatistics(c echo.Context) error {
	defer observe("user_statistics")()

	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	stats, err := h.service.UserStatistics(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = []ports.RoleUserStats{}
	}

	return c.JSON(http.StatusOK, stats)
}
