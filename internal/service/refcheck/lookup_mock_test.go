package refcheck

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-crm/internal/domain"
	"sync"
)

var _ customerLookup = &customerLookupMock{}

type customerLookupMock struct {
	ExistsFunc func(ctx context.Context, owner domain.Principal, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx   context.Context
			Owner domain.Principal
			ID    uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *customerLookupMock) Exists(ctx context.Context, owner domain.Principal, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("customerLookupMock.ExistsFunc: method is nil but customerLookup.Exists was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.Principal
		ID    uuid.UUID
	}{Ctx: ctx, Owner: owner, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, owner, id)
}

func (mock *customerLookupMock) ExistsCalls() []struct {
	Ctx   context.Context
	Owner domain.Principal
	ID    uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

var _ policyLookup = &policyLookupMock{}

type policyLookupMock struct {
	ExistsFunc func(ctx context.Context, owner domain.Principal, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx   context.Context
			Owner domain.Principal
			ID    uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *policyLookupMock) Exists(ctx context.Context, owner domain.Principal, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("policyLookupMock.ExistsFunc: method is nil but policyLookup.Exists was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.Principal
		ID    uuid.UUID
	}{Ctx: ctx, Owner: owner, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, owner, id)
}

func (mock *policyLookupMock) ExistsCalls() []struct {
	Ctx   context.Context
	Owner domain.Principal
	ID    uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
