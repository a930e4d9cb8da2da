package engine

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/claim"
	"sync"
)

var _ claimService = &claimServiceMock{}

type claimServiceMock struct {
	CreateClaimFunc          func(ctx context.Context, input claim.CreateClaimInput) (*domain.Claim, error)
	GetClaimFunc             func(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	ListClaimsByCustomerFunc func(ctx context.Context, customerID uuid.UUID) ([]domain.Claim, error)
	ListClaimsByPolicyFunc   func(ctx context.Context, policyID uuid.UUID) ([]domain.Claim, error)
	UpdateClaimFunc          func(ctx context.Context, input claim.UpdateClaimInput) (*domain.Claim, error)

	calls struct {
		CreateClaim []struct {
			Ctx   context.Context
			Input claim.CreateClaimInput
		}
		GetClaim []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListClaimsByCustomer []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
		ListClaimsByPolicy []struct {
			Ctx      context.Context
			PolicyID uuid.UUID
		}
		UpdateClaim []struct {
			Ctx   context.Context
			Input claim.UpdateClaimInput
		}
	}
	lockCreateClaim          sync.RWMutex
	lockGetClaim             sync.RWMutex
	lockListClaimsByCustomer sync.RWMutex
	lockListClaimsByPolicy   sync.RWMutex
	lockUpdateClaim          sync.RWMutex
}

func (mock *claimServiceMock) CreateClaim(ctx context.Context, input claim.CreateClaimInput) (*domain.Claim, error) {
	if mock.CreateClaimFunc == nil {
		panic("claimServiceMock.CreateClaimFunc: method is nil but claimService.CreateClaim was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input claim.CreateClaimInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateClaim.Lock()
	mock.calls.CreateClaim = append(mock.calls.CreateClaim, callInfo)
	mock.lockCreateClaim.Unlock()
	return mock.CreateClaimFunc(ctx, input)
}

func (mock *claimServiceMock) CreateClaimCalls() []struct {
	Ctx   context.Context
	Input claim.CreateClaimInput
} {
	mock.lockCreateClaim.RLock()
	calls := mock.calls.CreateClaim
	mock.lockCreateClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) GetClaim(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	if mock.GetClaimFunc == nil {
		panic("claimServiceMock.GetClaimFunc: method is nil but claimService.GetClaim was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetClaim.Lock()
	mock.calls.GetClaim = append(mock.calls.GetClaim, callInfo)
	mock.lockGetClaim.Unlock()
	return mock.GetClaimFunc(ctx, id)
}

func (mock *claimServiceMock) GetClaimCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetClaim.RLock()
	calls := mock.calls.GetClaim
	mock.lockGetClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) ListClaimsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Claim, error) {
	if mock.ListClaimsByCustomerFunc == nil {
		panic("claimServiceMock.ListClaimsByCustomerFunc: method is nil but claimService.ListClaimsByCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockListClaimsByCustomer.Lock()
	mock.calls.ListClaimsByCustomer = append(mock.calls.ListClaimsByCustomer, callInfo)
	mock.lockListClaimsByCustomer.Unlock()
	return mock.ListClaimsByCustomerFunc(ctx, customerID)
}

func (mock *claimServiceMock) ListClaimsByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockListClaimsByCustomer.RLock()
	calls := mock.calls.ListClaimsByCustomer
	mock.lockListClaimsByCustomer.RUnlock()
	return calls
}

func (mock *claimServiceMock) ListClaimsByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.Claim, error) {
	if mock.ListClaimsByPolicyFunc == nil {
		panic("claimServiceMock.ListClaimsByPolicyFunc: method is nil but claimService.ListClaimsByPolicy was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PolicyID uuid.UUID
	}{Ctx: ctx, PolicyID: policyID}
	mock.lockListClaimsByPolicy.Lock()
	mock.calls.ListClaimsByPolicy = append(mock.calls.ListClaimsByPolicy, callInfo)
	mock.lockListClaimsByPolicy.Unlock()
	return mock.ListClaimsByPolicyFunc(ctx, policyID)
}

func (mock *claimServiceMock) ListClaimsByPolicyCalls() []struct {
	Ctx      context.Context
	PolicyID uuid.UUID
} {
	mock.lockListClaimsByPolicy.RLock()
	calls := mock.calls.ListClaimsByPolicy
	mock.lockListClaimsByPolicy.RUnlock()
	return calls
}

func (mock *claimServiceMock) UpdateClaim(ctx context.Context, input claim.UpdateClaimInput) (*domain.Claim, error) {
	if mock.UpdateClaimFunc == nil {
		panic("claimServiceMock.UpdateClaimFunc: method is nil but claimService.UpdateClaim was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input claim.UpdateClaimInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateClaim.Lock()
	mock.calls.UpdateClaim = append(mock.calls.UpdateClaim, callInfo)
	mock.lockUpdateClaim.Unlock()
	return mock.UpdateClaimFunc(ctx, input)
}

func (mock *claimServiceMock) UpdateClaimCalls() []struct {
	Ctx   context.Context
	Input claim.UpdateClaimInput
} {
	mock.lockUpdateClaim.RLock()
	calls := mock.calls.UpdateClaim
	mock.lockUpdateClaim.RUnlock()
	return calls
}
