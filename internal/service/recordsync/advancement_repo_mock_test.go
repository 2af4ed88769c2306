package recordsync

import (
	"context"
	"sync"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ advancementRepo = &advancementRepoMock{}

type advancementRepoMock struct {
	CreateFunc func(ctx context.Context, a *domain.Advancement) (*domain.Advancement, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Advancement
		}
	}
	lockCreate sync.RWMutex
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

