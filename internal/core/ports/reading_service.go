package ports

import (
	"context"

	"github.com/aquasense/water-quality-api/internal/core/domain"
)

// SubmitReadingInput carries a new measurement. Sensor parameters are optional.
type SubmitReadingInput struct {
	LocationName    string
	PHLevel         *float64
	TurbidityNTU    *float64
	DissolvedOxygen *float64
	TemperatureC    *float64
	ConductivityUS  *float64
}

// ReadingService defines use-case operations for readings.
type ReadingService interface {
	// Submit stores a reading owned by the viewer, deriving status and total
	// dissolved solids at write time.
	Submit(ctx context.Context, viewer Viewer, input SubmitReadingInput) (*domain.Reading, error)
	// ListOwn returns the viewer's readings, newest first.
	ListOwn(ctx context.Context, viewer Viewer) ([]domain.Reading, error)
	// ListPublic returns the most recent readings for the public feed.
	ListPublic(ctx context.Context) ([]domain.Reading, error)
}
