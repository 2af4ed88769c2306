package recordsync

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// Cloud document field names.
const (
	fieldDescription  = "description"
	fieldPosition     = "position"
	fieldLatitude     = "latitude"
	fieldLongitude    = "longitude"
	fieldSurface      = "surface"
	fieldPricePerUnit = "prixParM2"
	fieldLevel        = "niveau"
	fieldBudget       = "budget"
	fieldCompany      = "entreprise"
	fieldStatus       = "statut"
	fieldReportedAt   = "dateSignalement"
	fieldUpdatedAt    = "updatedAt"
)

// fieldReader extracts typed values from one document and keeps the first
// type mismatch.
type fieldReader struct {
	doc domain.CloudDocument
	err error
}

func (r *fieldReader) fail(field, format string, args ...any) {
	if r.err == nil {
		r.err = &domain.AnomalyError{ExternalID: r.doc.ID, Field: field, Reason: fmt.Sprintf(format, args...)}
	}
}

func (r *fieldReader) lookup(field string) (any, bool) {
	v, ok := r.doc.Fields[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *fieldReader) text(field string) string {
	v, ok := r.lookup(field)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, "expected string, got %T", v)
		return ""
	}
	return strings.TrimSpace(s)
}

func (r *fieldReader) number(field string) (float64, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return 0, false
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	default:
		r.fail(field, "expected number, got %T", v)
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(field, "not a finite number")
		return 0, false
	}
	return f, true
}

func (r *fieldReader) nonNegative(field string) float64 {
	f, _ := r.number(field)
	if f < 0 {
		r.fail(field, "must be non-negative, got %v", f)
		return 0
	}
	return f
}

func (r *fieldReader) level(field string) int {
	f := r.nonNegative(field)
	if f != math.Trunc(f) {
		r.fail(field, "expected integer, got %v", f)
		return 0
	}
	return int(f)
}

func (r *fieldReader) timestamp(field string) (time.Time, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			r.fail(field, "unparseable timestamp %q", t)
			return time.Time{}, false
		}
		return parsed.UTC(), true
	default:
		r.fail(field, "expected timestamp, got %T", v)
		return time.Time{}, false
	}
}

func (r *fieldReader) location() domain.GeoPoint {
	if v, ok := r.lookup(fieldPosition); ok {
		p, ok := v.(domain.GeoPoint)
		if !ok {
			r.fail(fieldPosition, "expected geo point, got %T", v)
			return domain.GeoPoint{}
		}
		return p
	}

	lat, okLat := r.number(fieldLatitude)
	lon, okLon := r.number(fieldLongitude)
	if !okLat || !okLon {
		return domain.GeoPoint{}
	}
	return domain.GeoPoint{Latitude: lat, Longitude: lon}
}

// status reads the status label or id. An absent field keeps fallback.
func (r *fieldReader) status(fallback domain.StatusID) domain.StatusID {
	v, ok := r.lookup(fieldStatus)
	if !ok {
		return fallback
	}
	switch s := v.(type) {
	case string:
		if id, ok := domain.ParseStatus(s); ok {
			return id
		}
		r.fail(fieldStatus, "unknown status %q", s)
	case int64:
		if id := domain.StatusID(s); id.IsValid() {
			return id
		}
		r.fail(fieldStatus, "unknown status id %d", s)
	default:
		r.fail(fieldStatus, "expected label or id, got %T", v)
	}
	return fallback
}

// fromDocument maps a cloud document onto a record. Missing fields take
// defaults; a field of the wrong type or an unknown status is a
// *domain.AnomalyError. A missing status or timestamp falls back to that of
// existing, when given, so that repeated pulls of an unchanged document
// produce the same record and a partial document never rewinds the status.
func fromDocument(doc domain.CloudDocument, existing *domain.Record, now time.Time) (*domain.Record, error) {
	r := &fieldReader{doc: doc}

	status := domain.StatusNew
	if existing != nil {
		status = existing.Status
	}

	rec := &domain.Record{
		ExternalID:   doc.ID,
		Location:     r.location(),
		Description:  r.text(fieldDescription),
		Surface:      r.nonNegative(fieldSurface),
		PricePerUnit: r.nonNegative(fieldPricePerUnit),
		Level:        r.level(fieldLevel),
		Company:      r.text(fieldCompany),
		Status:       r.status(status),
	}
	reportedAt, hasReportedAt := r.timestamp(fieldReportedAt)
	updatedAt, hasUpdatedAt := r.timestamp(fieldUpdatedAt)

	if r.err != nil {
		return nil, r.err
	}

	if rec.Company == "" {
		rec.Company = domain.UnspecifiedCompany
	}

	switch {
	case hasReportedAt:
		rec.ReportedAt = reportedAt
	case existing != nil:
		rec.ReportedAt = existing.ReportedAt
	default:
		rec.ReportedAt = now
	}

	switch {
	case hasUpdatedAt:
		rec.UpdatedAt = updatedAt
	case existing != nil:
		rec.UpdatedAt = existing.UpdatedAt
	default:
		rec.UpdatedAt = now
	}

	rec.RecomputeBudget()
	return rec, nil
}

// toDocument maps a linked record onto the cloud field map.
func toDocument(rec *domain.Record) domain.CloudDocument {
	return domain.CloudDocument{
		ID: rec.ExternalID,
		Fields: map[string]any{
			fieldDescription:  rec.Description,
			fieldPosition:     rec.Location,
			fieldSurface:      rec.Surface,
			fieldPricePerUnit: rec.PricePerUnit,
			fieldLevel:        int64(rec.Level),
			fieldBudget:       rec.Budget,
			fieldCompany:      rec.Company,
			fieldStatus:       rec.Status.String(),
			fieldReportedAt:   rec.ReportedAt,
			fieldUpdatedAt:    rec.UpdatedAt,
		},
	}
}

// sameContent reports whether applying pulled to local would change nothing.
func sameContent(local, pulled *domain.Record) bool {
	return local.ExternalID == pulled.ExternalID &&
		local.Location == pulled.Location &&
		local.Description == pulled.Description &&
		local.Surface == pulled.Surface &&
		local.PricePerUnit == pulled.PricePerUnit &&
		local.Level == pulled.Level &&
		local.Budget == pulled.Budget &&
		local.Company == pulled.Company &&
		local.Status == pulled.Status &&
		local.ReportedAt.Equal(pulled.ReportedAt) &&
		local.UpdatedAt.Equal(pulled.UpdatedAt) &&
		!local.Dirty
}
