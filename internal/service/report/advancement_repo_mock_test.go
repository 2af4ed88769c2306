package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ advancementRepo = &advancementRepoMock{}

type advancementRepoMock struct {
	CreateFunc           func(ctx context.Context, a *domain.Advancement) (*domain.Advancement, error)
	ListByReportFunc     func(ctx context.Context, reportID int64) ([]domain.Advancement, error)
	ResolutionDelaysFunc func(ctx context.Context) ([]domain.ResolutionDelay, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Advancement
		}
		ListByReport []struct {
			Ctx      context.Context
			ReportID int64
		}
		ResolutionDelays []struct {
			Ctx context.Context
		}
	}
	lockCreate           sync.RWMutex
	lockListByReport     sync.RWMutex
	lockResolutionDelays sync.RWMutex
}

func (mock *advancementRepoMock) Create(ctx context.Context, a *domain.Advancement) (*domain.Advancement, error) {
	if mock.CreateFunc == nil {
		panic("advancementRepoMock.CreateFunc: method is nil but advancementRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Advancement
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *advancementRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Advancement
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.Advancement
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *advancementRepoMock) ListByReport(ctx context.Context, reportID int64) ([]domain.Advancement, error) {
	if mock.ListByReportFunc == nil {
		panic("advancementRepoMock.ListByReportFunc: method is nil but advancementRepo.ListByReport was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID int64
	}{
		Ctx:      ctx,
		ReportID: reportID,
	}
	mock.lockListByReport.Lock()
	mock.calls.ListByReport = append(mock.calls.ListByReport, callInfo)
	mock.lockListByReport.Unlock()
	return mock.ListByReportFunc(ctx, reportID)
}

func (mock *advancementRepoMock) ListByReportCalls() []struct {
	Ctx      context.Context
	ReportID int64
} {
	var calls []struct {
		Ctx      context.Context
		ReportID int64
	}
	mock.lockListByReport.RLock()
	calls = mock.calls.ListByReport
	mock.lockListByReport.RUnlock()
	return calls
}

func (mock *advancementRepoMock) ResolutionDelays(ctx context.Context) ([]domain.ResolutionDelay, error) {
	if mock.ResolutionDelaysFunc == nil {
		panic("advancementRepoMock.ResolutionDelaysFunc: method is nil but advancementRepo.ResolutionDelays was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockResolutionDelays.Lock()
	mock.calls.ResolutionDelays = append(mock.calls.ResolutionDelays, callInfo)
	mock.lockResolutionDelays.Unlock()
	return mock.ResolutionDelaysFunc(ctx)
}

func (mock *advancementRepoMock) ResolutionDelaysCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockResolutionDelays.RLock()
	calls = mock.calls.ResolutionDelays
	mock.lockResolutionDelays.RUnlock()
	return calls
}

