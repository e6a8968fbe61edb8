package handler

import "time"

// --- Request / Response types ---

type submitReadingRequest struct {
	LocationName    string   `json:"location_name"    validate:"required"`
	PHLevel         *float64 `json:"ph_level"         validate:"omitempty,gte=0,lte=14"`
	TurbidityNTU    *float64 `json:"turbidity_ntu"    validate:"omitempty,gte=0"`
	DissolvedOxygen *float64 `json:"dissolved_oxygen" validate:"omitempty,gte=0"`
	TemperatureC    *float64 `json:"temperature_c"`
	ConductivityUS  *float64 `json:"conductivity_us"  validate:"omitempty,gte=0"`
}

type submitReadingResponse struct {
	Message   string `json:"message"`
	ReadingID int64  `json:"reading_id"`
	Status    string `json:"status"`
}

// readingResponse is the transport view of one reading. StatusColor carries
// the bootstrap badge class so clients do not hardcode the mapping.
type readingResponse struct {
	ID                   int64     `json:"id"`
	LocationName         string    `json:"location_name"`
	PHLevel              *float64  `json:"ph_level"`
	TurbidityNTU         *float64  `json:"turbidity_ntu"`
	DissolvedOxygen      *float64  `json:"dissolved_oxygen"`
	TemperatureC         *float64  `json:"temperature_c"`
	ConductivityUS       *float64  `json:"conductivity_us"`
	TotalDissolvedSolids *float64  `json:"total_dissolved_solids"`
	Status               string    `json:"status"`
	StatusDisplay        string    `json:"status_display"`
	StatusColor          string    `json:"status_color"`
	Timestamp            time.Time `json:"timestamp"`
	IsPublic             bool      `json:"is_public"`
}

type listReadingsResponse struct {
	Readings []readingResponse `json:"readings"`
	Count    int               `json:"count"`
}

type publicReadingsResponse struct {
	Readings []readingResponse `json:"readings"`
	Count    int               `json:"count"`
	Message  string            `json:"message"`
}
