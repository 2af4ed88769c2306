package recordsync

import (
	"context"
	"sync"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

var _ documentStore = &documentStoreMock{}

type documentStoreMock struct {
	ListDocumentsFunc  func(ctx context.Context) ([]domain.CloudDocument, error)
	UpsertDocumentFunc func(ctx context.Context, doc domain.CloudDocument) error

	calls struct {
		ListDocuments []struct {
			Ctx context.Context
		}
		UpsertDocument []struct {
			Ctx context.Context
			Doc domain.CloudDocument
		}
	}
	lockListDocuments  sync.RWMutex
	lockUpsertDocument sync.RWMutex
}

func (mock *documentStoreMock) ListDocuments(ctx context.Context) ([]domain.CloudDocument, error) {
	if mock.ListDocumentsFunc == nil {
		panic("documentStoreMock.ListDocumentsFunc: method is nil but documentStore.ListDocuments was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListDocuments.Lock()
	mock.calls.ListDocuments = append(mock.calls.ListDocuments, callInfo)
	mock.lockListDocuments.Unlock()
	return mock.ListDocumentsFunc(ctx)
}

func (mock *documentStoreMock) ListDocumentsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListDocuments.RLock()
	calls = mock.calls.ListDocuments
	mock.lockListDocuments.RUnlock()
	return calls
}

func (mock *documentStoreMock) UpsertDocument(ctx context.Context, doc domain.CloudDocument) error {
	if mock.UpsertDocumentFunc == nil {
		panic("documentStoreMock.UpsertDocumentFunc: method is nil but documentStore.UpsertDocument was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Doc domain.CloudDocument
	}{
		Ctx: ctx,
		Doc: doc,
	}
	mock.lockUpsertDocument.Lock()
	mock.calls.UpsertDocument = append(mock.calls.UpsertDocument, callInfo)
	mock.lockUpsertDocument.Unlock()
	return mock.UpsertDocumentFunc(ctx, doc)
}

func (mock *documentStoreMock) UpsertDocumentCalls() []struct {
	Ctx context.Context
	Doc domain.CloudDocument
} {
	var calls []struct {
		Ctx context.Context
		Doc domain.CloudDocument
	}
	mock.lockUpsertDocument.RLock()
	calls = mock.calls.UpsertDocument
	mock.lockUpsertDocument.RUnlock()
	return calls
}

