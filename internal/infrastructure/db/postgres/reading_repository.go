package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aquasense/water-quality-api/internal/core/domain"
	"github.com/aquasense/water-quality-api/internal/core/ports"
)

const readingColumns = `id, location_name, ph_level, turbidity_ntu, dissolved_oxygen, temperature_c,
	conductivity_us, user_id, timestamp, total_dissolved_solids, status, is_public`

// ReadingRepository persists readings in the water_quality table and runs the
// fixed aggregation queries over it.
type ReadingRepository struct {
	db DB
}

func NewReadingRepository(db DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

func (r *ReadingRepository) Create(ctx context.Context, reading *domain.Reading) (*domain.Reading, error) {
	created := *reading
	err := r.db.QueryRow(ctx,
		`INSERT INTO water_quality
		 (location_name, ph_level, turbidity_ntu, dissolved_oxygen, temperature_c, conductivity_us,
		  user_id, timestamp, total_dissolved_solids, status, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, timestamp`,
		reading.LocationName, reading.PHLevel, reading.TurbidityNTU, reading.DissolvedOxygen,
		reading.TemperatureC, reading.ConductivityUS, reading.UserID, reading.Timestamp,
		reading.TotalDissolvedSolids, string(reading.Status), reading.IsPublic,
	).Scan(&created.ID, &created.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("insert reading: %w", err)
	}
	return &created, nil
}

func (r *ReadingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reading, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+readingColumns+` FROM water_quality WHERE user_id = $1 ORDER BY timestamp DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query readings by user: %w", err)
	}
	return scanReadings(rows)
}

func (r *ReadingRepository) ListRecent(ctx context.Context, limit int) ([]domain.Reading, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+readingColumns+` FROM water_quality ORDER BY timestamp DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query recent readings: %w", err)
	}
	return scanReadings(rows)
}

func scanReadings(rows pgx.Rows) ([]domain.Reading, error) {
	defer rows.Close()

	var readings []domain.Reading
	for rows.Next() {
		var (
			reading domain.Reading
			status  string
		)
		if err := rows.Scan(
			&reading.ID, &reading.LocationName, &reading.PHLevel, &reading.TurbidityNTU,
			&reading.DissolvedOxygen, &reading.TemperatureC, &reading.ConductivityUS,
			&reading.UserID, &reading.Timestamp, &reading.TotalDissolvedSolids, &status, &reading.IsPublic,
		); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		reading.Status = domain.Status(status)
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}
	return readings, nil
}

// scopeClause renders the visibility predicate. View-all scopes add no filter;
// everyone else is restricted to their own rows plus public ones.
func scopeClause(scope ports.ReadingScope) (string, []any) {
	if scope.ViewAll {
		return "", nil
	}
	return " WHERE (user_id = $1 OR is_public = TRUE)", []any{scope.ViewerID}
}

func (r *ReadingRepository) Statistics(ctx context.Context, scope ports.ReadingScope) (*ports.StatisticsResult, error) {
	where, args := scopeClause(scope)
	stats := &ports.StatisticsResult{}
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'excellent'),
		        COALESCE(AVG(ph_level), 0),
		        COUNT(DISTINCT location_name)
		 FROM water_quality`+where, args...,
	).Scan(&stats.TotalReadings, &stats.ExcellentReadings, &stats.AvgPH, &stats.ActiveLocations)
	if err != nil {
		return nil, fmt.Errorf("query statistics: %w", err)
	}
	return stats, nil
}

func (r *ReadingRepository) QualityDistribution(ctx context.Context, scope ports.ReadingScope) ([]ports.StatusCount, error) {
	where, args := scopeClause(scope)
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM water_quality`+where+` GROUP BY status ORDER BY status`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("query quality distribution: %w", err)
	}
	defer rows.Close()

	var buckets []ports.StatusCount
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan quality distribution: %w", err)
		}
		buckets = append(buckets, ports.StatusCount{Status: domain.Status(status), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quality distribution: %w", err)
	}
	return buckets, nil
}

// Trends groups scoped readings by calendar date. NULL per-date averages are
// smoothed to neutral constants in SQL so charts render without gaps.
func (r *ReadingRepository) Trends(ctx context.Context, scope ports.ReadingScope) ([]ports.TrendPoint, error) {
	where, args := scopeClause(scope)
	rows, err := r.db.Query(ctx,
		`SELECT timestamp::date AS day,
		        COALESCE(AVG(ph_level), 7.0),
		        COALESCE(AVG(dissolved_oxygen), 8.0),
		        COALESCE(AVG(turbidity_ntu), 5.0),
		        COUNT(*)
		 FROM water_quality`+where+`
		 GROUP BY day
		 ORDER BY day`, args...)
	if err != nil {
		return nil, fmt.Errorf("query trends: %w", err)
	}
	defer rows.Close()

	var points []ports.TrendPoint
	for rows.Next() {
		var p ports.TrendPoint
		if err := rows.Scan(&p.Date, &p.AvgPH, &p.AvgDO, &p.AvgTurbidity, &p.ReadingCount); err != nil {
			return nil, fmt.Errorf("scan trend point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trends: %w", err)
	}
	return points, nil
}

// LocationInsights aggregates per location over every reading; callers gate
// access by role before invoking it.
func (r *ReadingRepository) LocationInsights(ctx context.Context) ([]ports.LocationInsight, error) {
	rows, err := r.db.Query(ctx,
		`SELECT location_name,
		        COALESCE(AVG(ph_level), 0),
		        COALESCE(AVG(dissolved_oxygen), 0),
		        COALESCE(AVG(turbidity_ntu), 0),
		        COUNT(*),
		        MAX(timestamp)
		 FROM water_quality
		 GROUP BY location_name
		 ORDER BY location_name`)
	if err != nil {
		return nil, fmt.Errorf("query location insights: %w", err)
	}
	defer rows.Close()

	var insights []ports.LocationInsight
	for rows.Next() {
		var insight ports.LocationInsight
		if err := rows.Scan(
			&insight.Location, &insight.AvgPH, &insight.AvgDO, &insight.AvgTurbidity,
			&insight.ReadingCount, &insight.LastReading,
		); err != nil {
			return nil, fmt.Errorf("scan location insight: %w", err)
		}
		insights = append(insights, insight)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate location insights: %w", err)
	}
	return insights, nil
}
