package domain

import "time"

// UnspecifiedCompany is stored when a cloud document names no company.
const UnspecifiedCompany = "unspecified"

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Record is a road-work report. ExternalID is the cloud document id; it is
// empty for reports created locally and not yet linked.
type Record struct {
	ID           int64
	ExternalID   string
	Location     GeoPoint
	Description  string
	Surface      float64
	PricePerUnit float64
	Level        int
	Budget       float64
	Company      string
	Status       StatusID
	ReportedAt   time.Time
	Dirty        bool
	UpdatedAt    time.Time
}

// IsLinked reports whether the record has a cloud counterpart.
func (r *Record) IsLinked() bool {
	return r.ExternalID != ""
}

// ComputeBudget derives the budget of a report.
func ComputeBudget(level int, pricePerUnit, surface float64) float64 {
	return float64(level) * pricePerUnit * surface
}

// RecomputeBudget overwrites Budget from the other numeric fields.
func (r *Record) RecomputeBudget() {
	r.Budget = ComputeBudget(r.Level, r.PricePerUnit, r.Surface)
}

// Advancement is the immutable audit entry of one accepted status transition.
type Advancement struct {
	ID             int64
	ReportID       int64
	PreviousStatus StatusID
	NewStatus      StatusID
	ChangedAt      time.Time
}

// Photo is a picture attached to a report in the cloud. ReportExternalID is
// the cloud document id of the report.
type Photo struct {
	ID               string
	URL              string
	ReportExternalID string
	AddedAt          time.Time
}

// ResolutionDelay is the time a report took to reach StatusResolved.
type ResolutionDelay struct {
	ReportID int64
	Company  string
	Hours    float64
}

// CloudDocument is a flat field map keyed by the cloud document id. Values are
// plain Go types: string, float64, int64, bool, time.Time and GeoPoint.
type CloudDocument struct {
	ID     string
	Fields map[string]any
}

// RecordFilter narrows a report listing. Zero values match everything.
type RecordFilter struct {
	Status  StatusID
	Company string
	Limit   uint64
	Offset  uint64
}

// RecordTotals aggregates every report. CompletionPercent is the mean
// progress of the report statuses.
type RecordTotals struct {
	Count             int
	TotalSurface      float64
	TotalBudget       float64
	CompletionPercent float64
}
