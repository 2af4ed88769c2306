package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc           func(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Record, error)
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Record, error)
	ListFunc             func(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error)
	TotalsFunc           func(ctx context.Context) (domain.RecordTotals, error)
	UpdateFunc           func(ctx context.Context, rec *domain.Record) (*domain.Record, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.Record
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.RecordFilter
		}
		Totals []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			Rec *domain.Record
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockTotals           sync.RWMutex
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

func (mock *reportRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("reportRepoMock.DeleteFunc: method is nil but reportRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *reportRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *reportRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Record, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("reportRepoMock.GetByIDForUpdateFunc: method is nil but reportRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *reportRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByIDForUpdate.RLock()
	calls = mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *reportRepoMock) List(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.RecordFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.RecordFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.RecordFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportRepoMock) Totals(ctx context.Context) (domain.RecordTotals, error) {
	if mock.TotalsFunc == nil {
		panic("reportRepoMock.TotalsFunc: method is nil but reportRepo.Totals was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockTotals.Lock()
	mock.calls.Totals = append(mock.calls.Totals, callInfo)
	mock.lockTotals.Unlock()
	return mock.TotalsFunc(ctx)
}

func (mock *reportRepoMock) TotalsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockTotals.RLock()
	calls = mock.calls.Totals
	mock.lockTotals.RUnlock()
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

