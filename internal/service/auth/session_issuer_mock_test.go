package auth

import (
	"sync"

	"github.com/heartmarshall/roadworks-backend/internal/auth"
)

var _ sessionIssuer = &sessionIssuerMock{}

type sessionIssuerMock struct {
	IssueSessionFunc func(email string) (*auth.Session, error)

	calls struct {
		IssueSession []struct {
			Email string
		}
	}
	lockIssueSession sync.RWMutex
}

func (mock *sessionIssuerMock) IssueSession(email string) (*auth.Session, error) {
	if mock.IssueSessionFunc == nil {
		panic("sessionIssuerMock.IssueSessionFunc: method is nil but sessionIssuer.IssueSession was just called")
	}
	callInfo := struct {
		Email string
	}{
		Email: email,
	}
	mock.lockIssueSession.Lock()
	mock.calls.IssueSession = append(mock.calls.IssueSession, callInfo)
	mock.lockIssueSession.Unlock()
	return mock.IssueSessionFunc(email)
}

func (mock *sessionIssuerMock) IssueSessionCalls() []struct {
	Email string
} {
	var calls []struct {
		Email string
	}
	mock.lockIssueSession.RLock()
	calls = mock.calls.IssueSession
	mock.lockIssueSession.RUnlock()
	return calls
}

