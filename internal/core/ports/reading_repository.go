package ports

import (
	"context"
	"time"

	"github.com/aquasense/water-quality-api/internal/core/domain"
)

// StatisticsResult holds the dashboard card aggregates.
type StatisticsResult struct {
	TotalReadings     int64   `json:"total_readings"`
	ExcellentReadings int64   `json:"excellent_readings"`
	AvgPH             float64 `json:"avg_ph"`
	ActiveLocations   int64   `json:"active_locations"`
}

// StatusCount is one bucket of the quality distribution.
type StatusCount struct {
	Status domain.Status
	Count  int64
}

// TrendPoint is one calendar-date bucket of the trend series. The averages are
// already smoothed: a NULL aggregate is replaced with a neutral constant so
// charts render without gaps.
type TrendPoint struct {
	Date         time.Time
	AvgPH        float64
	AvgDO        float64
	AvgTurbidity float64
	ReadingCount int64
}

// LocationInsight is the per-location aggregate for the research view.
type LocationInsight struct {
	Location     string     `json:"location"`
	AvgPH        float64    `json:"avg_ph"`
	AvgDO        float64    `json:"avg_do"`
	AvgTurbidity float64    `json:"avg_turbidity"`
	ReadingCount int64      `json:"reading_count"`
	LastReading  *time.Time `json:"last_reading"`
}

// ReadingRepository defines persistence and aggregation operations for
// water-quality readings. Aggregates honouring a ReadingScope must apply the
// visibility predicate inside the query.
type ReadingRepository interface {
	// Create inserts a reading and returns it with ID and Timestamp set.
	Create(ctx context.Context, reading *domain.Reading) (*domain.Reading, error)
	// ListByUser returns all readings owned by userID, newest first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Reading, error)
	// ListRecent returns the most recent readings regardless of visibility.
	ListRecent(ctx context.Context, limit int) ([]domain.Reading, error)

	Statistics(ctx context.Context, scope ReadingScope) (*StatisticsResult, error)
	QualityDistribution(ctx context.Context, scope ReadingScope) ([]StatusCount, error)
	// Trends groups scoped readings by calendar date, ascending.
	Trends(ctx context.Context, scope ReadingScope) ([]TrendPoint, error)
	// LocationInsights aggregates over every reading; visibility is
	// intentionally not applied (cross-location research aggregate).
	LocationInsights(ctx context.Context) ([]LocationInsight, error)
}
