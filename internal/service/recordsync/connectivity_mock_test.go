package recordsync

import (
	"context"
	"sync"
)

var _ connectivity = &connectivityMock{}

type connectivityMock struct {
	IsOnlineFunc func(ctx context.Context) bool

	calls struct {
		IsOnline []struct {
			Ctx context.Context
		}
	}
	lockIsOnline sync.RWMutex
}

func (mock *connectivityMock) IsOnline(ctx context.Context) bool {
	if mock.IsOnlineFunc == nil {
		panic("connectivityMock.IsOnlineFunc: method is nil but connectivity.IsOnline was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockIsOnline.Lock()
	mock.calls.IsOnline = append(mock.calls.IsOnline, callInfo)
	mock.lockIsOnline.Unlock()
	return mock.IsOnlineFunc(ctx)
}

func (mock *connectivityMock) IsOnlineCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockIsOnline.RLock()
	calls = mock.calls.IsOnline
	mock.lockIsOnline.RUnlock()
	return calls
}

