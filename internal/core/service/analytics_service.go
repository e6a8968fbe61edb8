package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aquasense/water-quality-api/internal/api/metrics"
	"github.com/aquasense/water-quality-api/internal/core/domain"
	"github.com/aquasense/water-quality-api/internal/core/ports"
)

// cacheTTL bounds how stale a cached aggregate may be. Aggregates are cheap
// enough that correctness never depends on a hit.
const cacheTTL = 30 * time.Second

// chartColors maps each status bucket to the hex color the dashboard charts
// use. Unknown statuses get the neutral gray.
var chartColors = map[domain.Status]string{
	domain.StatusExcellent: "#28a745",
	domain.StatusGood:      "#20c997",
	domain.StatusFair:      "#ffc107",
	domain.StatusPoor:      "#dc3545",
}

const neutralChartColor = "#6c757d"

// AnalyticsService serves the dashboard aggregates over the visibility-scoped
// reading set. An optional cache may be nil.
type AnalyticsService struct {
	readings ports.ReadingRepository
	users    ports.UserRepository
	cache    ports.AnalyticsCache
	logger   zerolog.Logger
}

func NewAnalyticsService(readings ports.ReadingRepository, users ports.UserRepository, cache ports.AnalyticsCache, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{readings: readings, users: users, cache: cache, logger: logger}
}

func (s *AnalyticsService) Statistics(ctx context.Context, viewer ports.Viewer) (*ports.StatisticsResult, error) {
	var cached ports.StatisticsResult
	key := s.cacheKey("statistics", viewer)
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	stats, err := s.readings.Statistics(ctx, viewer.Scope())
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, stats)
	return stats, nil
}

func (s *AnalyticsService) Trends(ctx context.Context, viewer ports.Viewer) (*ports.TrendSeries, error) {
	var cached ports.TrendSeries
	key := s.cacheKey("trends", viewer)
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	points, err := s.readings.Trends(ctx, viewer.Scope())
	if err != nil {
		return nil, err
	}

	// Empty arrays, not null, so charts always receive a well-formed series.
	series := &ports.TrendSeries{
		Dates:           make([]string, 0, len(points)),
		PHValues:        make([]float64, 0, len(points)),
		DOValues:        make([]float64, 0, len(points)),
		TurbidityValues: make([]float64, 0, len(points)),
		ReadingCounts:   make([]int64, 0, len(points)),
	}
	for _, p := range points {
		series.Dates = append(series.Dates, p.Date.Format("2006-01-02"))
		series.PHValues = append(series.PHValues, p.AvgPH)
		series.DOValues = append(series.DOValues, p.AvgDO)
		series.TurbidityValues = append(series.TurbidityValues, p.AvgTurbidity)
		series.ReadingCounts = append(series.ReadingCounts, p.ReadingCount)
	}

	s.cacheSet(ctx, key, series)
	return series, nil
}

func (s *AnalyticsService) QualityDistribution(ctx context.Context, viewer ports.Viewer) (*ports.DistributionResult, error) {
	var cached ports.DistributionResult
	key := s.cacheKey("distribution", viewer)
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	buckets, err := s.readings.QualityDistribution(ctx, viewer.Scope())
	if err != nil {
		return nil, err
	}

	if len(buckets) == 0 {
		// Synthetic bucket keeps the pie chart well-formed on an empty set.
		return &ports.DistributionResult{
			Labels: []string{"No Data"},
			Data:   []int64{1},
			Colors: []string{neutralChartColor},
		}, nil
	}

	result := &ports.DistributionResult{
		Labels: make([]string, 0, len(buckets)),
		Data:   make([]int64, 0, len(buckets)),
		Colors: make([]string, 0, len(buckets)),
	}
	for _, b := range buckets {
		result.Labels = append(result.Labels, b.Status.DisplayName())
		result.Data = append(result.Data, b.Count)
		color, ok := chartColors[b.Status]
		if !ok {
			color = neutralChartColor
		}
		result.Colors = append(result.Colors, color)
	}

	s.cacheSet(ctx, key, result)
	return result, nil
}

// LocationInsights aggregates per location over every reading. The role gate
// is enforced here as well as at the route so the query never runs for an
// unauthorized viewer; visibility is deliberately not applied because this is
// a cross-location research aggregate.
func (s *AnalyticsService) LocationInsights(ctx context.Context, viewer ports.Viewer) ([]ports.LocationInsight, error) {
	if !viewer.Role.CanViewAll() {
		return nil, domain.ErrForbidden
	}
	return s.readings.LocationInsights(ctx)
}

// UserStatistics returns per-role account aggregates. Admin only.
func (s *AnalyticsService) UserStatistics(ctx context.Context, viewer ports.Viewer) ([]ports.RoleUserStats, error) {
	if !viewer.Role.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.users.RoleStatistics(ctx)
}

// cacheKey scopes cached aggregates by what the viewer may see, not by viewer
// identity alone: all view-all roles share one entry.
func (s *AnalyticsService) cacheKey(endpoint string, viewer ports.Viewer) string {
	if viewer.Role.CanViewAll() {
		return fmt.Sprintf("analytics:%s:all", endpoint)
	}
	return fmt.Sprintf("analytics:%s:user:%d", endpoint, viewer.ID)
}

func (s *AnalyticsService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("analytics cache read failed")
		metrics.AnalyticsCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	if hit {
		metrics.AnalyticsCacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.AnalyticsCacheTotal.WithLabelValues("miss").Inc()
	}
	return hit
}

func (s *AnalyticsService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("analytics cache write failed")
	}
}
