package engine

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/document"
	"sync"
)

var _ documentService = &documentServiceMock{}

type documentServiceMock struct {
	CreateDocumentFunc          func(ctx context.Context, input document.CreateDocumentInput) (*domain.Document, error)
	GetDocumentFunc             func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListDocumentsByCustomerFunc func(ctx context.Context, customerID uuid.UUID) ([]domain.Document, error)
	ListDocumentsByPolicyFunc   func(ctx context.Context, policyID uuid.UUID) ([]domain.Document, error)
	UpdateDocumentFunc          func(ctx context.Context, input document.UpdateDocumentInput) (*domain.Document, error)

	calls struct {
		CreateDocument []struct {
			Ctx   context.Context
			Input document.CreateDocumentInput
		}
		GetDocument []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListDocumentsByCustomer []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
		ListDocumentsByPolicy []struct {
			Ctx      context.Context
			PolicyID uuid.UUID
		}
		UpdateDocument []struct {
			Ctx   context.Context
			Input document.UpdateDocumentInput
		}
	}
	lockCreateDocument          sync.RWMutex
	lockGetDocument             sync.RWMutex
	lockListDocumentsByCustomer sync.RWMutex
	lockListDocumentsByPolicy   sync.RWMutex
	lockUpdateDocument          sync.RWMutex
}

func (mock *documentServiceMock) CreateDocument(ctx context.Context, input document.CreateDocumentInput) (*domain.Document, error) {
	if mock.CreateDocumentFunc == nil {
		panic("documentServiceMock.CreateDocumentFunc: method is nil but documentService.CreateDocument was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.CreateDocumentInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateDocument.Lock()
	mock.calls.CreateDocument = append(mock.calls.CreateDocument, callInfo)
	mock.lockCreateDocument.Unlock()
	return mock.CreateDocumentFunc(ctx, input)
}

func (mock *documentServiceMock) CreateDocumentCalls() []struct {
	Ctx   context.Context
	Input document.CreateDocumentInput
} {
	mock.lockCreateDocument.RLock()
	calls := mock.calls.CreateDocument
	mock.lockCreateDocument.RUnlock()
	return calls
}

func (mock *documentServiceMock) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetDocumentFunc == nil {
		panic("documentServiceMock.GetDocumentFunc: method is nil but documentService.GetDocument was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetDocument.Lock()
	mock.calls.GetDocument = append(mock.calls.GetDocument, callInfo)
	mock.lockGetDocument.Unlock()
	return mock.GetDocumentFunc(ctx, id)
}

func (mock *documentServiceMock) GetDocumentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDocument.RLock()
	calls := mock.calls.GetDocument
	mock.lockGetDocument.RUnlock()
	return calls
}

func (mock *documentServiceMock) ListDocumentsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Document, error) {
	if mock.ListDocumentsByCustomerFunc == nil {
		panic("documentServiceMock.ListDocumentsByCustomerFunc: method is nil but documentService.ListDocumentsByCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockListDocumentsByCustomer.Lock()
	mock.calls.ListDocumentsByCustomer = append(mock.calls.ListDocumentsByCustomer, callInfo)
	mock.lockListDocumentsByCustomer.Unlock()
	return mock.ListDocumentsByCustomerFunc(ctx, customerID)
}

func (mock *documentServiceMock) ListDocumentsByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockListDocumentsByCustomer.RLock()
	calls := mock.calls.ListDocumentsByCustomer
	mock.lockListDocumentsByCustomer.RUnlock()
	return calls
}

func (mock *documentServiceMock) ListDocumentsByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.Document, error) {
	if mock.ListDocumentsByPolicyFunc == nil {
		panic("documentServiceMock.ListDocumentsByPolicyFunc: method is nil but documentService.ListDocumentsByPolicy was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PolicyID uuid.UUID
	}{Ctx: ctx, PolicyID: policyID}
	mock.lockListDocumentsByPolicy.Lock()
	mock.calls.ListDocumentsByPolicy = append(mock.calls.ListDocumentsByPolicy, callInfo)
	mock.lockListDocumentsByPolicy.Unlock()
	return mock.ListDocumentsByPolicyFunc(ctx, policyID)
}

func (mock *documentServiceMock) ListDocumentsByPolicyCalls() []struct {
	Ctx      context.Context
	PolicyID uuid.UUID
} {
	mock.lockListDocumentsByPolicy.RLock()
	calls := mock.calls.ListDocumentsByPolicy
	mock.lockListDocumentsByPolicy.RUnlock()
	return calls
}

func (mock *documentServiceMock) UpdateDocument(ctx context.Context, input document.UpdateDocumentInput) (*domain.Document, error) {
	if mock.UpdateDocumentFunc == nil {
		panic("documentServiceMock.UpdateDocumentFunc: method is nil but documentService.UpdateDocument was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.UpdateDocumentInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateDocument.Lock()
	mock.calls.UpdateDocument = append(mock.calls.UpdateDocument, callInfo)
	mock.lockUpdateDocument.Unlock()
	return mock.UpdateDocumentFunc(ctx, input)
}

func (mock *documentServiceMock) UpdateDocumentCalls() []struct {
	Ctx   context.Context
	Input document.UpdateDocumentInput
} {
	mock.lockUpdateDocument.RLock()
	calls := mock.calls.UpdateDocument
	mock.lockUpdateDocument.RUnlock()
	return calls
}
