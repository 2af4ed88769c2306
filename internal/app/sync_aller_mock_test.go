package app

import (
	"context"
	"sync"
	"github.com/heartmarshall/roadworks-backend/internal/service/recordsync"
)

var _ syncAller = &syncAllerMock{}

type syncAllerMock struct {
	SyncAllFunc func(ctx context.Context) (recordsync.Report, recordsync.Report, error)

	calls struct {
		SyncAll []struct {
			Ctx context.Context
		}
	}
	lockSyncAll sync.RWMutex
}

func (mock *syncAllerMock) SyncAll(ctx context.Context) (recordsync.Report, recordsync.Report, error) {
	if mock.SyncAllFunc == nil {
		panic("syncAllerMock.SyncAllFunc: method is nil but syncAller.SyncAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSyncAll.Lock()
	mock.calls.SyncAll = append(mock.calls.SyncAll, callInfo)
	mock.lockSyncAll.Unlock()
	return mock.SyncAllFunc(ctx)
}

func (mock *syncAllerMock) SyncAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockSyncAll.RLock()
	calls = mock.calls.SyncAll
	mock.lockSyncAll.RUnlock()
	return calls
}

