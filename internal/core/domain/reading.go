package domain

import "time"

// Status is the derived quality classification of a reading.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
)

// Reading is one water-quality measurement submission. The five sensor
// parameters are optional; Status and TotalDissolvedSolids are derived once at
// write time and never recomputed on read.
type Reading struct {
	ID                   int64     `json:"id"`
	LocationName         string    `json:"location_name"`
	PHLevel              *float64  `json:"ph_level"`
	TurbidityNTU         *float64  `json:"turbidity_ntu"`
	DissolvedOxygen      *float64  `json:"dissolved_oxygen"`
	TemperatureC         *float64  `json:"temperature_c"`
	ConductivityUS       *float64  `json:"conductivity_us"`
	UserID               int64     `json:"user_id"`
	Timestamp            time.Time `json:"timestamp"`
	TotalDissolvedSolids *float64  `json:"total_dissolved_solids"`
	Status               Status    `json:"status"`
	IsPublic             bool      `json:"is_public"`
}
