package rest

import (
	"context"
	"sync"
	"github.com/heartmarshall/roadworks-backend/internal/domain"
	"github.com/heartmarshall/roadworks-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc          func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	RegisterFunc       func(ctx context.Context, input auth.RegisterInput) (*domain.Account, error)
	ChangePasswordFunc func(ctx context.Context, input auth.ChangePasswordInput) error

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		ChangePassword []struct {
			Ctx   context.Context
			Input auth.ChangePasswordInput
		}
	}
	lockLogin          sync.RWMutex
	lockRegister       sync.RWMutex
	lockChangePassword sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*domain.Account, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error {
	if mock.ChangePasswordFunc == nil {
		panic("authServiceMock.ChangePasswordFunc: method is nil but authService.ChangePassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ChangePasswordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockChangePassword.Lock()
	mock.calls.ChangePassword = append(mock.calls.ChangePassword, callInfo)
	mock.lockChangePassword.Unlock()
	return mock.ChangePasswordFunc(ctx, input)
}

func (mock *authServiceMock) ChangePasswordCalls() []struct {
	Ctx   context.Context
	Input auth.ChangePasswordInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.ChangePasswordInput
	}
	mock.lockChangePassword.RLock()
	calls = mock.calls.ChangePassword
	mock.lockChangePassword.RUnlock()
	return calls
}

