package policy

import (
	"context"
	"github.com/heartmarshall/insurance-crm/internal/domain"
	"sync"
)

var _ referenceValidator = &referenceValidatorMock{}

type referenceValidatorMock struct {
	ValidateReferencesFunc func(ctx context.Context, owner domain.Principal, kind domain.EntityKind, refs domain.References) error

	calls struct {
		ValidateReferences []struct {
			Ctx   context.Context
			Owner domain.Principal
			Kind  domain.EntityKind
			Refs  domain.References
		}
	}
	lockValidateReferences sync.RWMutex
}

func (mock *referenceValidatorMock) ValidateReferences(ctx context.Context, owner domain.Principal, kind domain.EntityKind, refs domain.References) error {
	if mock.ValidateReferencesFunc == nil {
		panic("referenceValidatorMock.ValidateReferencesFunc: method is nil but referenceValidator.ValidateReferences was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.Principal
		Kind  domain.EntityKind
		Refs  domain.References
	}{Ctx: ctx, Owner: owner, Kind: kind, Refs: refs}
	mock.lockValidateReferences.Lock()
	mock.calls.ValidateReferences = append(mock.calls.ValidateReferences, callInfo)
	mock.lockValidateReferences.Unlock()
	return mock.ValidateReferencesFunc(ctx, owner, kind, refs)
}

func (mock *referenceValidatorMock) ValidateReferencesCalls() []struct {
	Ctx   context.Context
	Owner domain.Principal
	Kind  domain.EntityKind
	Refs  domain.References
} {
	mock.lockValidateReferences.RLock()
	calls := mock.calls.ValidateReferences
	mock.lockValidateReferences.RUnlock()
	return calls
}
