package lockout

import (
	"context"
	"sync"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByEmailFunc        func(ctx context.Context, email string) (*domain.Account, error)
	IncrementFailuresFunc func(ctx context.Context, email string, maxAttempts int) (*domain.Account, error)
	ListBlockedFunc       func(ctx context.Context) ([]domain.Account, error)
	ResetFailuresFunc     func(ctx context.Context, email string) error
	ResetFailuresByIDFunc func(ctx context.Context, id int64) (*domain.Account, error)
	SetCloudDisabledFunc  func(ctx context.Context, email string, disabled bool) error

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		IncrementFailures []struct {
			Ctx         context.Context
			Email       string
			MaxAttempts int
		}
		ListBlocked []struct {
			Ctx context.Context
		}
		ResetFailures []struct {
			Ctx   context.Context
			Email string
		}
		ResetFailuresByID []struct {
			Ctx context.Context
			ID  int64
		}
		SetCloudDisabled []struct {
			Ctx      context.Context
			Email    string
			Disabled bool
		}
	}
	lockGetByEmail        sync.RWMutex
	lockIncrementFailures sync.RWMutex
	lockListBlocked       sync.RWMutex
	lockResetFailures     sync.RWMutex
	lockResetFailuresByID sync.RWMutex
	lockSetCloudDisabled  sync.RWMutex
}

func (mock *accountRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if mock.GetByEmailFunc == nil {
		panic("accountRepoMock.GetByEmailFunc: method is nil but accountRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *accountRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *accountRepoMock) IncrementFailures(ctx context.Context, email string, maxAttempts int) (*domain.Account, error) {
	if mock.IncrementFailuresFunc == nil {
		panic("accountRepoMock.IncrementFailuresFunc: method is nil but accountRepo.IncrementFailures was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Email       string
		MaxAttempts int
	}{
		Ctx:         ctx,
		Email:       email,
		MaxAttempts: maxAttempts,
	}
	mock.lockIncrementFailures.Lock()
	mock.calls.IncrementFailures = append(mock.calls.IncrementFailures, callInfo)
	mock.lockIncrementFailures.Unlock()
	return mock.IncrementFailuresFunc(ctx, email, maxAttempts)
}

func (mock *accountRepoMock) IncrementFailuresCalls() []struct {
	Ctx         context.Context
	Email       string
	MaxAttempts int
} {
	var calls []struct {
		Ctx         context.Context
		Email       string
		MaxAttempts int
	}
	mock.lockIncrementFailures.RLock()
	calls = mock.calls.IncrementFailures
	mock.lockIncrementFailures.RUnlock()
	return calls
}

func (mock *accountRepoMock) ListBlocked(ctx context.Context) ([]domain.Account, error) {
	if mock.ListBlockedFunc == nil {
		panic("accountRepoMock.ListBlockedFunc: method is nil but accountRepo.ListBlocked was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListBlocked.Lock()
	mock.calls.ListBlocked = append(mock.calls.ListBlocked, callInfo)
	mock.lockListBlocked.Unlock()
	return mock.ListBlockedFunc(ctx)
}

func (mock *accountRepoMock) ListBlockedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListBlocked.RLock()
	calls = mock.calls.ListBlocked
	mock.lockListBlocked.RUnlock()
	return calls
}

func (mock *accountRepoMock) ResetFailures(ctx context.Context, email string) error {
	if mock.ResetFailuresFunc == nil {
		panic("accountRepoMock.ResetFailuresFunc: method is nil but accountRepo.ResetFailures was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockResetFailures.Lock()
	mock.calls.ResetFailures = append(mock.calls.ResetFailures, callInfo)
	mock.lockResetFailures.Unlock()
	return mock.ResetFailuresFunc(ctx, email)
}

func (mock *accountRepoMock) ResetFailuresCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockResetFailures.RLock()
	calls = mock.calls.ResetFailures
	mock.lockResetFailures.RUnlock()
	return calls
}

func (mock *accountRepoMock) ResetFailuresByID(ctx context.Context, id int64) (*domain.Account, error) {
	if mock.ResetFailuresByIDFunc == nil {
		panic("accountRepoMock.ResetFailuresByIDFunc: method is nil but accountRepo.ResetFailuresByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockResetFailuresByID.Lock()
	mock.calls.ResetFailuresByID = append(mock.calls.ResetFailuresByID, callInfo)
	mock.lockResetFailuresByID.Unlock()
	return mock.ResetFailuresByIDFunc(ctx, id)
}

func (mock *accountRepoMock) ResetFailuresByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockResetFailuresByID.RLock()
	calls = mock.calls.ResetFailuresByID
	mock.lockResetFailuresByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) SetCloudDisabled(ctx context.Context, email string, disabled bool) error {
	if mock.SetCloudDisabledFunc == nil {
		panic("accountRepoMock.SetCloudDisabledFunc: method is nil but accountRepo.SetCloudDisabled was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Disabled bool
	}{
		Ctx:      ctx,
		Email:    email,
		Disabled: disabled,
	}
	mock.lockSetCloudDisabled.Lock()
	mock.calls.SetCloudDisabled = append(mock.calls.SetCloudDisabled, callInfo)
	mock.lockSetCloudDisabled.Unlock()
	return mock.SetCloudDisabledFunc(ctx, email, disabled)
}

func (mock *accountRepoMock) SetCloudDisabledCalls() []struct {
	Ctx      context.Context
	Email    string
	Disabled bool
} {
	var calls []struct {
		Ctx      context.Context
		Email    string
		Disabled bool
	}
	mock.lockSetCloudDisabled.RLock()
	calls = mock.calls.SetCloudDisabled
	mock.lockSetCloudDisabled.RUnlock()
	return calls
}

