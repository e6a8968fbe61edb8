package ports

import "context"

// TrendSeries is the chart-ready trend payload: parallel arrays, one entry per
// distinct calendar date present in the scoped data, ascending.
type TrendSeries struct {
	Dates           []string  `json:"dates"`
	PHValues        []float64 `json:"ph_values"`
	DOValues        []float64 `json:"do_values"`
	TurbidityValues []float64 `json:"turbidity_values"`
	ReadingCounts   []int64   `json:"reading_counts"`
}

// DistributionResult is the chart-ready quality distribution. An empty scoped
// set yields a single synthetic "No Data" bucket so charts stay well-formed.
type DistributionResult struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
	Colors []string `json:"colors"`
}

// AnalyticsService serves the dashboard aggregates. All operations are
// idempotent reads over the visibility-scoped data set.
type AnalyticsService interface {
	Statistics(ctx context.Context, viewer Viewer) (*StatisticsResult, error)
	Trends(ctx context.Context, viewer Viewer) (*TrendSeries, error)
	QualityDistribution(ctx context.Context, viewer Viewer) (*DistributionResult, error)
	// LocationInsights requires a view-all role and aggregates over every
	// reading regardless of per-user visibility.
	LocationInsights(ctx context.Context, viewer Viewer) ([]LocationInsight, error)
	// UserStatistics requires the admin role.
	UserStatistics(ctx context.Context, viewer Viewer) ([]RoleUserStats, error)
}
