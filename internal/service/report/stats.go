package report

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// Summary returns report-wide totals.
func (s *Service) Summary(ctx context.Context) (domain.RecordTotals, error) {
	totals, err := s.reports.Totals(ctx)
	if err != nil {
		return domain.RecordTotals{}, fmt.Errorf("report.Summary: %w", err)
	}
	totals.CompletionPercent = math.Round(totals.CompletionPercent*100) / 100
	return totals, nil
}

// DelayStats summarises resolution delays in hours.
type DelayStats struct {
	Count        int
	AverageHours float64
	MinHours     float64
	MaxHours     float64
}

// CompanyDelayStats is DelayStats for one company.
type CompanyDelayStats struct {
	Company string
	DelayStats
}

// CompletionDelays is the time reports took to reach the resolved status,
// overall and per company.
type CompletionDelays struct {
	Overall   DelayStats
	ByCompany []CompanyDelayStats
}

// CompletionDelays computes how long reports took from filing to resolution.
// Companies are sorted by name.
func (s *Service) CompletionDelays(ctx context.Context) (*CompletionDelays, error) {
	delays, err := s.advancements.ResolutionDelays(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.CompletionDelays: %w", err)
	}

	out := &CompletionDelays{}
	byCompany := map[string][]float64{}
	all := make([]float64, 0, len(delays))
	for _, d := range delays {
		all = append(all, d.Hours)
		byCompany[d.Company] = append(byCompany[d.Company], d.Hours)
	}
	out.Overall = summarise(all)

	for company, hours := range byCompany {
		out.ByCompany = append(out.ByCompany, CompanyDelayStats{Company: company, DelayStats: summarise(hours)})
	}
	sort.Slice(out.ByCompany, func(i, j int) bool {
		return out.ByCompany[i].Company < out.ByCompany[j].Company
	})

	return out, nil
}

func summarise(hours []float64) DelayStats {
	if len(hours) == 0 {
		return DelayStats{}
	}

	st := DelayStats{Count: len(hours), MinHours: hours[0], MaxHours: hours[0]}
	var sum float64
	for _, h := range hours {
		sum += h
		st.MinHours = math.Min(st.MinHours, h)
		st.MaxHours = math.Max(st.MaxHours, h)
	}
	st.AverageHours = sum / float64(len(hours))
	return st
}
