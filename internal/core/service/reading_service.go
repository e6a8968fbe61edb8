package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aquasense/water-quality-api/internal/core/domain"
	"github.com/aquasense/water-quality-api/internal/core/ports"
)

// publicFeedLimit caps the anonymous public-readings feed.
const publicFeedLimit = 10

// ReadingService implements reading submission and retrieval.
type ReadingService struct {
	repo   ports.ReadingRepository
	logger zerolog.Logger
}

func NewReadingService(repo ports.ReadingRepository, logger zerolog.Logger) *ReadingService {
	return &ReadingService{repo: repo, logger: logger}
}

// Submit stores a new reading owned by the viewer. Status and total dissolved
// solids are derived here, once, at write time; they are never recomputed on
// later reads.
func (s *ReadingService) Submit(ctx context.Context, viewer ports.Viewer, input ports.SubmitReadingInput) (*domain.Reading, error) {
	if input.LocationName == "" {
		return nil, fmt.Errorf("%w: location_name is required", domain.ErrValidation)
	}

	reading := &domain.Reading{
		LocationName:         input.LocationName,
		PHLevel:              input.PHLevel,
		TurbidityNTU:         input.TurbidityNTU,
		DissolvedOxygen:      input.DissolvedOxygen,
		TemperatureC:         input.TemperatureC,
		ConductivityUS:       input.ConductivityUS,
		UserID:               viewer.ID,
		Timestamp:            time.Now().UTC(),
		Status:               domain.DeriveStatus(input.PHLevel, input.DissolvedOxygen, input.TurbidityNTU),
		TotalDissolvedSolids: domain.TDSFromConductivity(input.ConductivityUS),
		IsPublic:             true,
	}

	created, err := s.repo.Create(ctx, reading)
	if err != nil {
		s.logger.Error().Err(err).Str("location", input.LocationName).Msg("failed to store reading")
		return nil, err
	}

	s.logger.Info().
		Int64("reading_id", created.ID).
		Int64("user_id", viewer.ID).
		Str("status", string(created.Status)).
		Msg("reading submitted")

	return created, nil
}

// ListOwn returns the viewer's readings, newest first.
func (s *ReadingService) ListOwn(ctx context.Context, viewer ports.Viewer) ([]domain.Reading, error) {
	return s.repo.ListByUser(ctx, viewer.ID)
}

// ListPublic returns the most recent readings for the anonymous feed.
func (s *ReadingService) ListPublic(ctx context.Context) ([]domain.Reading, error) {
	return s.repo.ListRecent(ctx, publicFeedLimit)
}
