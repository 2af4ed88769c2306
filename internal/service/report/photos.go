package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// Tooltip is the map popup of one report: the record and its photos.
type Tooltip struct {
	Record *domain.Record
	Photos []domain.Photo
}

// Photos returns the cloud photos of a report. A report without a cloud link,
// a local-only deployment and an unreachable cloud all give an empty list.
func (s *Service) Photos(ctx context.Context, id int64) ([]domain.Photo, error) {
	rec, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Photos: %w", err)
	}

	photos, err := s.photosOf(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("report.Photos: %w", err)
	}
	return photos, nil
}

// Tooltip returns a report together with its photos.
func (s *Service) Tooltip(ctx context.Context, id int64) (*Tooltip, error) {
	rec, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Tooltip: %w", err)
	}

	photos, err := s.photosOf(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("report.Tooltip: %w", err)
	}
	return &Tooltip{Record: rec, Photos: photos}, nil
}

func (s *Service) photosOf(ctx context.Context, rec *domain.Record) ([]domain.Photo, error) {
	if s.photos == nil || !rec.IsLinked() {
		return []domain.Photo{}, nil
	}

	photos, err := s.photos.ListByReport(ctx, rec.ExternalID)
	if errors.Is(err, domain.ErrUnreachable) {
		s.log.WarnContext(ctx, "photos unavailable, cloud unreachable",
			slog.Int64("report_id", rec.ID), slog.String("error", err.Error()))
		return []domain.Photo{}, nil
	}
	if err != nil {
		return nil, err
	}
	return photos, nil
}
