package domain

import "math"

// tdsFactor approximates TDS (ppm) from conductivity (µS/cm).
const tdsFactor = 0.64

// TDSFromConductivity derives total dissolved solids from conductivity,
// rounded to two decimals. Returns nil when conductivity is absent.
func TDSFromConductivity(conductivityUS *float64) *float64 {
	if conductivityUS == nil {
		return nil
	}
	tds := math.Round(*conductivityUS*tdsFactor*100) / 100
	return &tds
}

// QualityScore rates a reading 0–6 from its pH, dissolved oxygen and
// turbidity. A missing parameter scores 0 on its axis rather than failing the
// comparison.
func QualityScore(ph, dissolvedOxygen, turbidity *float64) int {
	score := 0

	if ph != nil {
		switch {
		case *ph >= 6.5 && *ph <= 8.5:
			score += 2
		case *ph >= 6.0 && *ph <= 9.0:
			score += 1
		}
	}

	if dissolvedOxygen != nil {
		switch {
		case *dissolvedOxygen >= 5:
			score += 2
		case *dissolvedOxygen >= 3:
			score += 1
		}
	}

	if turbidity != nil {
		switch {
		case *turbidity <= 5:
			score += 2
		case *turbidity <= 10:
			score += 1
		}
	}

	return score
}

// StatusForScore maps a quality score to its classification.
func StatusForScore(score int) Status {
	switch {
	case score >= 5:
		return StatusExcellent
	case score >= 3:
		return StatusGood
	case score >= 1:
		return StatusFair
	default:
		return StatusPoor
	}
}

// DeriveStatus classifies a reading from its raw parameters.
func DeriveStatus(ph, dissolvedOxygen, turbidity *float64) Status {
	return StatusForScore(QualityScore(ph, dissolvedOxygen, turbidity))
}

// DisplayName returns the human-readable status name, "Unknown" for any value
// outside the closed set.
func (s Status) DisplayName() string {
	switch s {
	case StatusExcellent:
		return "Excellent"
	case StatusGood:
		return "Good"
	case StatusFair:
		return "Fair"
	case StatusPoor:
		return "Poor"
	}
	return "Unknown"
}

// Color returns the Bootstrap color class used to render the status,
// "secondary" for any value outside the closed set.
func (s Status) Color() string {
	switch s {
	case StatusExcellent:
		return "success"
	case StatusGood:
		return "info"
	case StatusFair:
		return "warning"
	case StatusPoor:
		return "danger"
	}
	return "secondary"
}
