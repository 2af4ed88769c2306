package report

import (
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

const (
	maxDescriptionLength = 2000
	maxCompanyLength     = 200
	maxListLimit         = 500
)

// CreateInput holds parameters for a locally filed report.
type CreateInput struct {
	Location     domain.GeoPoint
	Description  string
	Surface      float64
	PricePerUnit float64
	Level        int
	Company      string
	ReportedAt   time.Time
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateLocation(i.Location)...)
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	errs = append(errs, validateNumbers(&i.Surface, &i.PricePerUnit, &i.Level)...)
	if len(i.Company) > maxCompanyLength {
		errs = append(errs, domain.FieldError{Field: "company", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a report update. Nil fields are left
// unchanged. Budget is accepted for compatibility with older clients and
// ignored: the stored budget is always derived from the other numbers.
type UpdateInput struct {
	ID           int64
	Status       *domain.StatusID
	Description  *string
	Surface      *float64
	PricePerUnit *float64
	Level        *int
	Company      *string
	Budget       *float64
	ModifiedAt   *time.Time
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	errs = append(errs, validateNumbers(i.Surface, i.PricePerUnit, i.Level)...)
	if i.Company != nil && len(*i.Company) > maxCompanyLength {
		errs = append(errs, domain.FieldError{Field: "company", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing reports.
type ListInput struct {
	Status  *domain.StatusID
	Company string
	Limit   int
	Offset  int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateLocation(p domain.GeoPoint) []domain.FieldError {
	var errs []domain.FieldError
	if p.Latitude < -90 || p.Latitude > 90 {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}
	return errs
}

func validateNumbers(surface, price *float64, level *int) []domain.FieldError {
	var errs []domain.FieldError
	if surface != nil && *surface < 0 {
		errs = append(errs, domain.FieldError{Field: "surface", Message: "must be non-negative"})
	}
	if price != nil && *price < 0 {
		errs = append(errs, domain.FieldError{Field: "price_per_unit", Message: "must be non-negative"})
	}
	if level != nil && *level < 0 {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be non-negative"})
	}
	return errs
}
