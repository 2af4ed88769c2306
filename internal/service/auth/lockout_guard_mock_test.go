package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ lockoutGuard = &lockoutGuardMock{}

type lockoutGuardMock struct {
	IsBlockedFunc     func(ctx context.Context, email string) (bool, error)
	RecordFailureFunc func(ctx context.Context, email string) (*domain.Account, error)
	RecordSuccessFunc func(ctx context.Context, email string) error

	calls struct {
		IsBlocked []struct {
			Ctx   context.Context
			Email string
		}
		RecordFailure []struct {
			Ctx   context.Context
			Email string
		}
		RecordSuccess []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockIsBlocked     sync.RWMutex
	lockRecordFailure sync.RWMutex
	lockRecordSuccess sync.RWMutex
}

func (mock *lockoutGuardMock) IsBlocked(ctx context.Context, email string) (bool, error) {
	if mock.IsBlockedFunc == nil {
		panic("lockoutGuardMock.IsBlockedFunc: method is nil but lockoutGuard.IsBlocked was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockIsBlocked.Lock()
	mock.calls.IsBlocked = append(mock.calls.IsBlocked, callInfo)
	mock.lockIsBlocked.Unlock()
	return mock.IsBlockedFunc(ctx, email)
}

func (mock *lockoutGuardMock) IsBlockedCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockIsBlocked.RLock()
	calls = mock.calls.IsBlocked
	mock.lockIsBlocked.RUnlock()
	return calls
}

func (mock *lockoutGuardMock) RecordFailure(ctx context.Context, email string) (*domain.Account, error) {
	if mock.RecordFailureFunc == nil {
		panic("lockoutGuardMock.RecordFailureFunc: method is nil but lockoutGuard.RecordFailure was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockRecordFailure.Lock()
	mock.calls.RecordFailure = append(mock.calls.RecordFailure, callInfo)
	mock.lockRecordFailure.Unlock()
	return mock.RecordFailureFunc(ctx, email)
}

func (mock *lockoutGuardMock) RecordFailureCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockRecordFailure.RLock()
	calls = mock.calls.RecordFailure
	mock.lockRecordFailure.RUnlock()
	return calls
}

func (mock *lockoutGuardMock) RecordSuccess(ctx context.Context, email string) error {
	if mock.RecordSuccessFunc == nil {
		panic("lockoutGuardMock.RecordSuccessFunc: method is nil but lockoutGuard.RecordSuccess was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockRecordSuccess.Lock()
	mock.calls.RecordSuccess = append(mock.calls.RecordSuccess, callInfo)
	mock.lockRecordSuccess.Unlock()
	return mock.RecordSuccessFunc(ctx, email)
}

func (mock *lockoutGuardMock) RecordSuccessCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockRecordSuccess.RLock()
	calls = mock.calls.RecordSuccess
	mock.lockRecordSuccess.RUnlock()
	return calls
}

