package handler

import "github.com/aquasense/water-quality-api/internal/core/domain"

func toReadingResponse(r domain.Reading) readingResponse {
	return readingResponse{
		ID:                   r.ID,
		LocationName:         r.LocationName,
		PHLevel:              r.PHLevel,
		TurbidityNTU:         r.TurbidityNTU,
		DissolvedOxygen:      r.DissolvedOxygen,
		TemperatureC:         r.TemperatureC,
		ConductivityUS:       r.ConductivityUS,
		TotalDissolvedSolids: r.TotalDissolvedSolids,
		Status:               string(r.Status),
		StatusDisplay:        r.Status.DisplayName(),
		StatusColor:          r.Status.Color(),
		Timestamp:            r.Timestamp,
		IsPublic:             r.IsPublic,
	}
}

func toReadingResponses(readings []domain.Reading) []readingResponse {
	out := make([]readingResponse, 0, len(readings))
	for _, r := range readings {
		out = append(out, toReadingResponse(r))
	}
	return out
}
