package report

import (
	"context"
	"sync"
	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ photoSource = &photoSourceMock{}

type photoSourceMock struct {
	ListByReportFunc func(ctx context.Context, externalID string) ([]domain.Photo, error)

	calls struct {
		ListByReport []struct {
			Ctx        context.Context
			ExternalID string
		}
	}
	lockListByReport sync.RWMutex
}

func (mock *photoSourceMock) ListByReport(ctx context.Context, externalID string) ([]domain.Photo, error) {
	if mock.ListByReportFunc == nil {
		panic("photoSourceMock.ListByReportFunc: method is nil but photoSource.ListByReport was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ExternalID string
	}{
		Ctx:        ctx,
		ExternalID: externalID,
	}
	mock.lockListByReport.Lock()
	mock.calls.ListByReport = append(mock.calls.ListByReport, callInfo)
	mock.lockListByReport.Unlock()
	return mock.ListByReportFunc(ctx, externalID)
}

func (mock *photoSourceMock) ListByReportCalls() []struct {
	Ctx        context.Context
	ExternalID string
} {
	var calls []struct {
		Ctx        context.Context
		ExternalID string
	}
	mock.lockListByReport.RLock()
	calls = mock.calls.ListByReport
	mock.lockListByReport.RUnlock()
	return calls
}

