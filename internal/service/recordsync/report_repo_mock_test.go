package recordsync

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc           func(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	ListByExternalIDFunc func(ctx context.Context, externalID string) ([]domain.Record, error)
	ListLinkedFunc       func(ctx context.Context) ([]domain.Record, error)
	MarkCleanFunc        func(ctx context.Context, id int64, updatedAt time.Time) (bool, error)
	UpdateFunc           func(ctx context.Context, rec *domain.Record) (*domain.Record, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.Record
		}
		ListByExternalID []struct {
			Ctx        context.Context
			ExternalID string
		}
		ListLinked []struct {
			Ctx context.Context
		}
		MarkClean []struct {
			Ctx       context.Context
			ID        int64
			UpdatedAt time.Time
		}
		Update []struct {
			Ctx context.Context
			Rec *domain.Record
		}
	}
	lockCreate           sync.RWMutex
	lockListByExternalID sync.RWMutex
	lockListLinked       sync.RWMutex
	lockMarkClean        sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Record
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Record
} {
	var calls []struct {
		Ctx context.Context
		Rec *domain.Record
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) ListByExternalID(ctx context.Context, externalID string) ([]domain.Record, error) {
	if mock.ListByExternalIDFunc == nil {
		panic("reportRepoMock.ListByExternalIDFunc: method is nil but reportRepo.ListByExternalID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ExternalID string
	}{
		Ctx:        ctx,
		ExternalID: externalID,
	}
	mock.lockListByExternalID.Lock()
	mock.calls.ListByExternalID = append(mock.calls.ListByExternalID, callInfo)
	mock.lockListByExternalID.Unlock()
	return mock.ListByExternalIDFunc(ctx, externalID)
}

func (mock *reportRepoMock) ListByExternalIDCalls() []struct {
	Ctx        context.Context
	ExternalID string
} {
	var calls []struct {
		Ctx        context.Context
		ExternalID string
	}
	mock.lockListByExternalID.RLock()
	calls = mock.calls.ListByExternalID
	mock.lockListByExternalID.RUnlock()
	return calls
}

func (mock *reportRepoMock) ListLinked(ctx context.Context) ([]domain.Record, error) {
	if mock.ListLinkedFunc == nil {
		panic("reportRepoMock.ListLinkedFunc: method is nil but reportRepo.ListLinked was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListLinked.Lock()
	mock.calls.ListLinked = append(mock.calls.ListLinked, callInfo)
	mock.lockListLinked.Unlock()
	return mock.ListLinkedFunc(ctx)
}

func (mock *reportRepoMock) ListLinkedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListLinked.RLock()
	calls = mock.calls.ListLinked
	mock.lockListLinked.RUnlock()
	return calls
}

func (mock *reportRepoMock) MarkClean(ctx context.Context, id int64, updatedAt time.Time) (bool, error) {
	if mock.MarkCleanFunc == nil {
		panic("reportRepoMock.MarkCleanFunc: method is nil but reportRepo.MarkClean was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        int64
		UpdatedAt time.Time
	}{
		Ctx:       ctx,
		ID:        id,
		UpdatedAt: updatedAt,
	}
	mock.lockMarkClean.Lock()
	mock.calls.MarkClean = append(mock.calls.MarkClean, callInfo)
	mock.lockMarkClean.Unlock()
	return mock.MarkCleanFunc(ctx, id, updatedAt)
}

func (mock *reportRepoMock) MarkCleanCalls() []struct {
	Ctx       context.Context
	ID        int64
	UpdatedAt time.Time
} {
	var calls []struct {
		Ctx       context.Context
		ID        int64
		UpdatedAt time.Time
	}
	mock.lockMarkClean.RLock()
	calls = mock.calls.MarkClean
	mock.lockMarkClean.RUnlock()
	return calls
}

func (mock *reportRepoMock) Update(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	if mock.UpdateFunc == nil {
		panic("reportRepoMock.UpdateFunc: method is nil but reportRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Record
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec)
}

func (mock *reportRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rec *domain.Record
} {
	var calls []struct {
		Ctx context.Context
		Rec *domain.Record
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

