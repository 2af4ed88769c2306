package lockout

import (
	"context"
	"sync"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ cloudIdentity = &cloudIdentityMock{}

type cloudIdentityMock struct {
	LookupByEmailFunc func(ctx context.Context, email string) (*domain.CloudIdentity, error)
	SetDisabledFunc   func(ctx context.Context, email string, disabled bool) error

	calls struct {
		LookupByEmail []struct {
			Ctx   context.Context
			Email string
		}
		SetDisabled []struct {
			Ctx      context.Context
			Email    string
			Disabled bool
		}
	}
	lockLookupByEmail sync.RWMutex
	lockSetDisabled   sync.RWMutex
}

func (mock *cloudIdentityMock) LookupByEmail(ctx context.Context, email string) (*domain.CloudIdentity, error) {
	if mock.LookupByEmailFunc == nil {
		panic("cloudIdentityMock.LookupByEmailFunc: method is nil but cloudIdentity.LookupByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockLookupByEmail.Lock()
	mock.calls.LookupByEmail = append(mock.calls.LookupByEmail, callInfo)
	mock.lockLookupByEmail.Unlock()
	return mock.LookupByEmailFunc(ctx, email)
}

func (mock *cloudIdentityMock) LookupByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockLookupByEmail.RLock()
	calls = mock.calls.LookupByEmail
	mock.lockLookupByEmail.RUnlock()
	return calls
}

func (mock *cloudIdentityMock) SetDisabled(ctx context.Context, email string, disabled bool) error {
	if mock.SetDisabledFunc == nil {
		panic("cloudIdentityMock.SetDisabledFunc: method is nil but cloudIdentity.SetDisabled was just called")
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
	mock.lockSetDisabled.Lock()
	mock.calls.SetDisabled = append(mock.calls.SetDisabled, callInfo)
	mock.lockSetDisabled.Unlock()
	return mock.SetDisabledFunc(ctx, email, disabled)
}

func (mock *cloudIdentityMock) SetDisabledCalls() []struct {
	Ctx      context.Context
	Email    string
	Disabled bool
} {
	var calls []struct {
		Ctx      context.Context
		Email    string
		Disabled bool
	}
	mock.lockSetDisabled.RLock()
	calls = mock.calls.SetDisabled
	mock.lockSetDisabled.RUnlock()
	return calls
}

