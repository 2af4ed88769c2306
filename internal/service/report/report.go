package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// Create files a new local report. It starts in StatusNew with no cloud link.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Record, error) {
	input.Company = strings.TrimSpace(input.Company)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	rec := &domain.Record{
		Location:     input.Location,
		Description:  strings.TrimSpace(input.Description),
		Surface:      input.Surface,
		PricePerUnit: input.PricePerUnit,
		Level:        input.Level,
		Company:      input.Company,
		Status:       domain.StatusNew,
		ReportedAt:   input.ReportedAt,
		Dirty:        true,
		UpdatedAt:    now,
	}
	if rec.Company == "" {
		rec.Company = domain.UnspecifiedCompany
	}
	if rec.ReportedAt.IsZero() {
		rec.ReportedAt = now
	}
	rec.RecomputeBudget()

	created, err := s.reports.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("report.Create: %w", err)
	}

	s.log.InfoContext(ctx, "report created", slog.Int64("report_id", created.ID))
	return created, nil
}

// Get returns one report.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Record, error) {
	rec, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Get: %w", err)
	}
	return rec, nil
}

// List returns reports matching the input, ordered by id.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Record, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.RecordFilter{
		Company: strings.TrimSpace(input.Company),
		Limit:   uint64(input.Limit),
		Offset:  uint64(input.Offset),
	}
	if input.Status != nil {
		f.Status = *input.Status
	}

	recs, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("report.List: %w", err)
	}
	return recs, nil
}

// Update applies the input to a report in one transaction. An illegal status
// change fails the whole update with a *domain.TransitionError and nothing is
// written. A legal change appends exactly one advancement stamped with
// ModifiedAt, or the current time. The budget is recomputed and the report
// is marked dirty.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Record, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Record
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.reports.GetByIDForUpdate(txCtx, input.ID)
		if err != nil {
			return err
		}

		previous := rec.Status
		if input.Status != nil {
			if err := domain.CheckTransition(previous, *input.Status); err != nil {
				return err
			}
			rec.Status = *input.Status
		}

		applyFields(rec, input)
		rec.RecomputeBudget()
		rec.Dirty = true
		rec.UpdatedAt = s.now()

		updated, err = s.reports.Update(txCtx, rec)
		if err != nil {
			return err
		}

		if rec.Status == previous {
			return nil
		}

		changedAt := s.now()
		if input.ModifiedAt != nil && !input.ModifiedAt.IsZero() {
			changedAt = *input.ModifiedAt
		}
		_, err = s.advancements.Create(txCtx, &domain.Advancement{
			ReportID:       rec.ID,
			PreviousStatus: previous,
			NewStatus:      rec.Status,
			ChangedAt:      changedAt,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("report.Update: %w", err)
	}

	s.log.InfoContext(ctx, "report updated",
		slog.Int64("report_id", updated.ID),
		slog.String("status", updated.Status.String()),
		slog.Float64("budget", updated.Budget),
	)
	return updated, nil
}

func applyFields(rec *domain.Record, input UpdateInput) {
	if input.Description != nil {
		rec.Description = strings.TrimSpace(*input.Description)
	}
	if input.Surface != nil {
		rec.Surface = *input.Surface
	}
	if input.PricePerUnit != nil {
		rec.PricePerUnit = *input.PricePerUnit
	}
	if input.Level != nil {
		rec.Level = *input.Level
	}
	if input.Company != nil {
		rec.Company = strings.TrimSpace(*input.Company)
		if rec.Company == "" {
			rec.Company = domain.UnspecifiedCompany
		}
	}
}

// Delete removes a report locally. The cloud copy is left alone; a linked
// report comes back on the next pull.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		return fmt.Errorf("report.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "report deleted", slog.Int64("report_id", id))
	return nil
}

// History returns the advancements of a report, oldest first.
func (s *Service) History(ctx context.Context, id int64) ([]domain.Advancement, error) {
	if _, err := s.reports.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("report.History: %w", err)
	}

	history, err := s.advancements.ListByReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.History: %w", err)
	}
	return history, nil
}
