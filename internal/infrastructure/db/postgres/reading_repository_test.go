package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"

	"github.com/aquasense/water-quality-api/internal/core/domain"
	"github.com/aquasense/water-quality-api/internal/core/ports"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("new mock pool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
	return mock
}

func floatPtr(v float64) *float64 { return &v }

func TestReadingRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReadingRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO water_quality`).
		WithArgs("River Aire", floatPtr(7.2), floatPtr(3.0), floatPtr(8.5), floatPtr(14.0), floatPtr(500.0),
			int64(42), now, floatPtr(320.0), "excellent", true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "timestamp"}).AddRow(int64(7), now))

	created, err := repo.Create(context.Background(), &domain.Reading{
		LocationName:         "River Aire",
		PHLevel:              floatPtr(7.2),
		TurbidityNTU:         floatPtr(3.0),
		DissolvedOxygen:      floatPtr(8.5),
		TemperatureC:         floatPtr(14.0),
		ConductivityUS:       floatPtr(500.0),
		UserID:               42,
		Timestamp:            now,
		TotalDissolvedSolids: floatPtr(320.0),
		Status:               domain.StatusExcellent,
		IsPublic:             true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("ID = %d, want 7", created.ID)
	}
	if !created.Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v, want %v", created.Timestamp, now)
	}
}

func TestReadingRepositoryListByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReadingRepository(mock)

	now := time.Now().UTC()
	cols := []string{"id", "location_name", "ph_level", "turbidity_ntu", "dissolved_oxygen",
		"temperature_c", "conductivity_us", "user_id", "timestamp", "total_dissolved_solids", "status", "is_public"}
	mock.ExpectQuery(`SELECT .+ FROM water_quality WHERE user_id = \$1 ORDER BY timestamp DESC`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(2), "Lake B", floatPtr(6.8), nil, nil, nil, nil, int64(42), now, nil, "fair", true).
			AddRow(int64(1), "Lake A", floatPtr(7.0), floatPtr(2.0), floatPtr(9.0), floatPtr(12.0),
				floatPtr(400.0), int64(42), now.Add(-time.Hour), floatPtr(256.0), "excellent", false))

	readings, err := repo.ListByUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(readings) != 2 {
		t.Fatalf("len = %d, want 2", len(readings))
	}
	if readings[0].Status != domain.StatusFair {
		t.Errorf("first status = %q, want fair", readings[0].Status)
	}
	if readings[0].TurbidityNTU != nil {
		t.Errorf("nil turbidity survived scan: %v", *readings[0].TurbidityNTU)
	}
	if readings[1].IsPublic {
		t.Error("second reading should be private")
	}
}

func TestReadingRepositoryStatisticsScoped(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReadingRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\),`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"count", "excellent", "avg_ph", "locations"}).
			AddRow(int64(10), int64(4), 7.15, int64(3)))

	stats, err := repo.Statistics(context.Background(), ports.ReadingScope{ViewerID: 42})
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalReadings != 10 || stats.ExcellentReadings != 4 {
		t.Errorf("counts = %d/%d, want 10/4", stats.TotalReadings, stats.ExcellentReadings)
	}
	if stats.AvgPH != 7.15 {
		t.Errorf("AvgPH = %v, want 7.15", stats.AvgPH)
	}
	if stats.ActiveLocations != 3 {
		t.Errorf("ActiveLocations = %d, want 3", stats.ActiveLocations)
	}
}

func TestReadingRepositoryStatisticsViewAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReadingRepository(mock)

	// View-all scopes must not bind a viewer argument.
	mock.ExpectQuery(`SELECT COUNT\(\*\),`).
		WillReturnRows(pgxmock.NewRows([]string{"count", "excellent", "avg_ph", "locations"}).
			AddRow(int64(0), int64(0), 0.0, int64(0)))

	stats, err := repo.Statistics(context.Background(), ports.ReadingScope{ViewAll: true})
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalReadings != 0 || stats.AvgPH != 0 {
		t.Errorf("empty table should yield zeroes, got %+v", stats)
	}
}

func TestReadingRepositoryQualityDistribution(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReadingRepository(mock)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM water_quality`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow("excellent", int64(3)).
			AddRow("poor", int64(1)))

	buckets, err := repo.QualityDistribution(context.Background(), ports.ReadingScope{ViewerID: 5})
	if err != nil {
		t.Fatalf("QualityDistribution: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("len = %d, want 2", len(buckets))
	}
	if buckets[0].Status != domain.StatusExcellent || buckets[0].Count != 3 {
		t.Errorf("first bucket = %+v", buckets[0])
	}
}

func TestReadingRepositoryTrends(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReadingRepository(mock)

	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	mock.ExpectQuery(`SELECT timestamp::date AS day,`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"day", "avg_ph", "avg_do", "avg_turbidity", "count"}).
			AddRow(day1, 7.1, 8.0, 5.0, int64(2)).
			AddRow(day2, 6.9, 7.5, 4.0, int64(1)))

	points, err := repo.Trends(context.Background(), ports.ReadingScope{ViewerID: 5})
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("len = %d, want 2", len(points))
	}
	if !points[0].Date.Equal(day1) || points[0].ReadingCount != 2 {
		t.Errorf("first point = %+v", points[0])
	}
}

func TestReadingRepositoryLocationInsights(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReadingRepository(mock)

	last := time.Now().UTC()
	mock.ExpectQuery(`SELECT location_name,`).
		WillReturnRows(pgxmock.NewRows([]string{"location", "avg_ph", "avg_do", "avg_turbidity", "count", "last"}).
			AddRow("River Aire", 7.2, 8.1, 3.5, int64(12), &last))

	insights, err := repo.LocationInsights(context.Background())
	if err != nil {
		t.Fatalf("LocationInsights: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("len = %d, want 1", len(insights))
	}
	if insights[0].Location != "River Aire" || insights[0].ReadingCount != 12 {
		t.Errorf("insight = %+v", insights[0])
	}
	if insights[0].LastReading == nil || !insights[0].LastReading.Equal(last) {
		t.Errorf("LastReading = %v, want %v", insights[0].LastReading, last)
	}
}

func TestReadingRepositoryQueryError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReadingRepository(mock)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT .+ FROM water_quality WHERE user_id`).
		WithArgs(int64(1)).
		WillReturnError(boom)

	if _, err := repo.ListByUser(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}
