package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/claim"
	"github.com/heartmarshall/insurance-crm/internal/service/customer"
	"github.com/heartmarshall/insurance-crm/internal/service/document"
	"github.com/heartmarshall/insurance-crm/internal/service/engine"
	"github.com/heartmarshall/insurance-crm/internal/service/policy"
	"sync"
)

var _ recordEngine = &recordEngineMock{}

type recordEngineMock struct {
	CreateCustomerFunc          func(ctx context.Context, input customer.CreateCustomerInput) engine.Result[*domain.Customer]
	GetCustomerFunc             func(ctx context.Context, id uuid.UUID) engine.Result[*domain.Customer]
	ListCustomersFunc           func(ctx context.Context, includeErased bool) engine.Result[[]domain.Customer]
	UpdateCustomerFunc          func(ctx context.Context, input customer.UpdateCustomerInput) engine.Result[*domain.Customer]
	SoftDeleteCustomerFunc      func(ctx context.Context, id uuid.UUID) engine.Result[*domain.Customer]
	CreatePolicyFunc            func(ctx context.Context, input policy.CreatePolicyInput) engine.Result[*domain.Policy]
	GetPolicyFunc               func(ctx context.Context, id uuid.UUID) engine.Result[*domain.Policy]
	ListPoliciesByCustomerFunc  func(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Policy]
	UpdatePolicyFunc            func(ctx context.Context, input policy.UpdatePolicyInput) engine.Result[*domain.Policy]
	HardDeletePolicyFunc        func(ctx context.Context, id uuid.UUID) engine.Result[struct{}]
	CreateClaimFunc             func(ctx context.Context, input claim.CreateClaimInput) engine.Result[*domain.Claim]
	GetClaimFunc                func(ctx context.Context, id uuid.UUID) engine.Result[*domain.Claim]
	ListClaimsByCustomerFunc    func(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Claim]
	ListClaimsByPolicyFunc      func(ctx context.Context, policyID uuid.UUID) engine.Result[[]domain.Claim]
	UpdateClaimFunc             func(ctx context.Context, input claim.UpdateClaimInput) engine.Result[*domain.Claim]
	CreateDocumentFunc          func(ctx context.Context, input document.CreateDocumentInput) engine.Result[*domain.Document]
	GetDocumentFunc             func(ctx context.Context, id uuid.UUID) engine.Result[*domain.Document]
	ListDocumentsByCustomerFunc func(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Document]
	ListDocumentsByPolicyFunc   func(ctx context.Context, policyID uuid.UUID) engine.Result[[]domain.Document]
	UpdateDocumentFunc          func(ctx context.Context, input document.UpdateDocumentInput) engine.Result[*domain.Document]

	calls struct {
		CreateCustomer []struct {
			Ctx   context.Context
			Input customer.CreateCustomerInput
		}
		GetCustomer []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListCustomers []struct {
			Ctx           context.Context
			IncludeErased bool
		}
		UpdateCustomer []struct {
			Ctx   context.Context
			Input customer.UpdateCustomerInput
		}
		SoftDeleteCustomer []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreatePolicy []struct {
			Ctx   context.Context
			Input policy.CreatePolicyInput
		}
		GetPolicy []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListPoliciesByCustomer []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
		UpdatePolicy []struct {
			Ctx   context.Context
			Input policy.UpdatePolicyInput
		}
		HardDeletePolicy []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
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
	lockCreateCustomer          sync.RWMutex
	lockGetCustomer             sync.RWMutex
	lockListCustomers           sync.RWMutex
	lockUpdateCustomer          sync.RWMutex
	lockSoftDeleteCustomer      sync.RWMutex
	lockCreatePolicy            sync.RWMutex
	lockGetPolicy               sync.RWMutex
	lockListPoliciesByCustomer  sync.RWMutex
	lockUpdatePolicy            sync.RWMutex
	lockHardDeletePolicy        sync.RWMutex
	lockCreateClaim             sync.RWMutex
	lockGetClaim                sync.RWMutex
	lockListClaimsByCustomer    sync.RWMutex
	lockListClaimsByPolicy      sync.RWMutex
	lockUpdateClaim             sync.RWMutex
	lockCreateDocument          sync.RWMutex
	lockGetDocument             sync.RWMutex
	lockListDocumentsByCustomer sync.RWMutex
	lockListDocumentsByPolicy   sync.RWMutex
	lockUpdateDocument          sync.RWMutex
}

func (mock *recordEngineMock) CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) engine.Result[*domain.Customer] {
	if mock.CreateCustomerFunc == nil {
		panic("recordEngineMock.CreateCustomerFunc: method is nil but recordEngine.CreateCustomer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input customer.CreateCustomerInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCustomer.Lock()
	mock.calls.CreateCustomer = append(mock.calls.CreateCustomer, callInfo)
	mock.lockCreateCustomer.Unlock()
	return mock.CreateCustomerFunc(ctx, input)
}

func (mock *recordEngineMock) CreateCustomerCalls() []struct {
	Ctx   context.Context
	Input customer.CreateCustomerInput
} {
	mock.lockCreateCustomer.RLock()
	calls := mock.calls.CreateCustomer
	mock.lockCreateCustomer.RUnlock()
	return calls
}

func (mock *recordEngineMock) GetCustomer(ctx context.Context, id uuid.UUID) engine.Result[*domain.Customer] {
	if mock.GetCustomerFunc == nil {
		panic("recordEngineMock.GetCustomerFunc: method is nil but recordEngine.GetCustomer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetCustomer.Lock()
	mock.calls.GetCustomer = append(mock.calls.GetCustomer, callInfo)
	mock.lockGetCustomer.Unlock()
	return mock.GetCustomerFunc(ctx, id)
}

func (mock *recordEngineMock) GetCustomerCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetCustomer.RLock()
	calls := mock.calls.GetCustomer
	mock.lockGetCustomer.RUnlock()
	return calls
}

func (mock *recordEngineMock) ListCustomers(ctx context.Context, includeErased bool) engine.Result[[]domain.Customer] {
	if mock.ListCustomersFunc == nil {
		panic("recordEngineMock.ListCustomersFunc: method is nil but recordEngine.ListCustomers was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		IncludeErased bool
	}{Ctx: ctx, IncludeErased: includeErased}
	mock.lockListCustomers.Lock()
	mock.calls.ListCustomers = append(mock.calls.ListCustomers, callInfo)
	mock.lockListCustomers.Unlock()
	return mock.ListCustomersFunc(ctx, includeErased)
}

func (mock *recordEngineMock) ListCustomersCalls() []struct {
	Ctx           context.Context
	IncludeErased bool
} {
	mock.lockListCustomers.RLock()
	calls := mock.calls.ListCustomers
	mock.lockListCustomers.RUnlock()
	return calls
}

func (mock *recordEngineMock) UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) engine.Result[*domain.Customer] {
	if mock.UpdateCustomerFunc == nil {
		panic("recordEngineMock.UpdateCustomerFunc: method is nil but recordEngine.UpdateCustomer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input customer.UpdateCustomerInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCustomer.Lock()
	mock.calls.UpdateCustomer = append(mock.calls.UpdateCustomer, callInfo)
	mock.lockUpdateCustomer.Unlock()
	return mock.UpdateCustomerFunc(ctx, input)
}

func (mock *recordEngineMock) UpdateCustomerCalls() []struct {
	Ctx   context.Context
	Input customer.UpdateCustomerInput
} {
	mock.lockUpdateCustomer.RLock()
	calls := mock.calls.UpdateCustomer
	mock.lockUpdateCustomer.RUnlock()
	return calls
}

func (mock *recordEngineMock) SoftDeleteCustomer(ctx context.Context, id uuid.UUID) engine.Result[*domain.Customer] {
	if mock.SoftDeleteCustomerFunc == nil {
		panic("recordEngineMock.SoftDeleteCustomerFunc: method is nil but recordEngine.SoftDeleteCustomer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSoftDeleteCustomer.Lock()
	mock.calls.SoftDeleteCustomer = append(mock.calls.SoftDeleteCustomer, callInfo)
	mock.lockSoftDeleteCustomer.Unlock()
	return mock.SoftDeleteCustomerFunc(ctx, id)
}

func (mock *recordEngineMock) SoftDeleteCustomerCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDeleteCustomer.RLock()
	calls := mock.calls.SoftDeleteCustomer
	mock.lockSoftDeleteCustomer.RUnlock()
	return calls
}

func (mock *recordEngineMock) CreatePolicy(ctx context.Context, input policy.CreatePolicyInput) engine.Result[*domain.Policy] {
	if mock.CreatePolicyFunc == nil {
		panic("recordEngineMock.CreatePolicyFunc: method is nil but recordEngine.CreatePolicy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input policy.CreatePolicyInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePolicy.Lock()
	mock.calls.CreatePolicy = append(mock.calls.CreatePolicy, callInfo)
	mock.lockCreatePolicy.Unlock()
	return mock.CreatePolicyFunc(ctx, input)
}

func (mock *recordEngineMock) CreatePolicyCalls() []struct {
	Ctx   context.Context
	Input policy.CreatePolicyInput
} {
	mock.lockCreatePolicy.RLock()
	calls := mock.calls.CreatePolicy
	mock.lockCreatePolicy.RUnlock()
	return calls
}

func (mock *recordEngineMock) GetPolicy(ctx context.Context, id uuid.UUID) engine.Result[*domain.Policy] {
	if mock.GetPolicyFunc == nil {
		panic("recordEngineMock.GetPolicyFunc: method is nil but recordEngine.GetPolicy was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPolicy.Lock()
	mock.calls.GetPolicy = append(mock.calls.GetPolicy, callInfo)
	mock.lockGetPolicy.Unlock()
	return mock.GetPolicyFunc(ctx, id)
}

func (mock *recordEngineMock) GetPolicyCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPolicy.RLock()
	calls := mock.calls.GetPolicy
	mock.lockGetPolicy.RUnlock()
	return calls
}

func (mock *recordEngineMock) ListPoliciesByCustomer(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Policy] {
	if mock.ListPoliciesByCustomerFunc == nil {
		panic("recordEngineMock.ListPoliciesByCustomerFunc: method is nil but recordEngine.ListPoliciesByCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockListPoliciesByCustomer.Lock()
	mock.calls.ListPoliciesByCustomer = append(mock.calls.ListPoliciesByCustomer, callInfo)
	mock.lockListPoliciesByCustomer.Unlock()
	return mock.ListPoliciesByCustomerFunc(ctx, customerID)
}

func (mock *recordEngineMock) ListPoliciesByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockListPoliciesByCustomer.RLock()
	calls := mock.calls.ListPoliciesByCustomer
	mock.lockListPoliciesByCustomer.RUnlock()
	return calls
}

func (mock *recordEngineMock) UpdatePolicy(ctx context.Context, input policy.UpdatePolicyInput) engine.Result[*domain.Policy] {
	if mock.UpdatePolicyFunc == nil {
		panic("recordEngineMock.UpdatePolicyFunc: method is nil but recordEngine.UpdatePolicy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input policy.UpdatePolicyInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdatePolicy.Lock()
	mock.calls.UpdatePolicy = append(mock.calls.UpdatePolicy, callInfo)
	mock.lockUpdatePolicy.Unlock()
	return mock.UpdatePolicyFunc(ctx, input)
}

func (mock *recordEngineMock) UpdatePolicyCalls() []struct {
	Ctx   context.Context
	Input policy.UpdatePolicyInput
} {
	mock.lockUpdatePolicy.RLock()
	calls := mock.calls.UpdatePolicy
	mock.lockUpdatePolicy.RUnlock()
	return calls
}

func (mock *recordEngineMock) HardDeletePolicy(ctx context.Context, id uuid.UUID) engine.Result[struct{}] {
	if mock.HardDeletePolicyFunc == nil {
		panic("recordEngineMock.HardDeletePolicyFunc: method is nil but recordEngine.HardDeletePolicy was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockHardDeletePolicy.Lock()
	mock.calls.HardDeletePolicy = append(mock.calls.HardDeletePolicy, callInfo)
	mock.lockHardDeletePolicy.Unlock()
	return mock.HardDeletePolicyFunc(ctx, id)
}

func (mock *recordEngineMock) HardDeletePolicyCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockHardDeletePolicy.RLock()
	calls := mock.calls.HardDeletePolicy
	mock.lockHardDeletePolicy.RUnlock()
	return calls
}

func (mock *recordEngineMock) CreateClaim(ctx context.Context, input claim.CreateClaimInput) engine.Result[*domain.Claim] {
	if mock.CreateClaimFunc == nil {
		panic("recordEngineMock.CreateClaimFunc: method is nil but recordEngine.CreateClaim was just called")
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

func (mock *recordEngineMock) CreateClaimCalls() []struct {
	Ctx   context.Context
	Input claim.CreateClaimInput
} {
	mock.lockCreateClaim.RLock()
	calls := mock.calls.CreateClaim
	mock.lockCreateClaim.RUnlock()
	return calls
}

func (mock *recordEngineMock) GetClaim(ctx context.Context, id uuid.UUID) engine.Result[*domain.Claim] {
	if mock.GetClaimFunc == nil {
		panic("recordEngineMock.GetClaimFunc: method is nil but recordEngine.GetClaim was just called")
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

func (mock *recordEngineMock) GetClaimCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetClaim.RLock()
	calls := mock.calls.GetClaim
	mock.lockGetClaim.RUnlock()
	return calls
}

func (mock *recordEngineMock) ListClaimsByCustomer(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Claim] {
	if mock.ListClaimsByCustomerFunc == nil {
		panic("recordEngineMock.ListClaimsByCustomerFunc: method is nil but recordEngine.ListClaimsByCustomer was just called")
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

func (mock *recordEngineMock) ListClaimsByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockListClaimsByCustomer.RLock()
	calls := mock.calls.ListClaimsByCustomer
	mock.lockListClaimsByCustomer.RUnlock()
	return calls
}

func (mock *recordEngineMock) ListClaimsByPolicy(ctx context.Context, policyID uuid.UUID) engine.Result[[]domain.Claim] {
	if mock.ListClaimsByPolicyFunc == nil {
		panic("recordEngineMock.ListClaimsByPolicyFunc: method is nil but recordEngine.ListClaimsByPolicy was just called")
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

func (mock *recordEngineMock) ListClaimsByPolicyCalls() []struct {
	Ctx      context.Context
	PolicyID uuid.UUID
} {
	mock.lockListClaimsByPolicy.RLock()
	calls := mock.calls.ListClaimsByPolicy
	mock.lockListClaimsByPolicy.RUnlock()
	return calls
}

func (mock *recordEngineMock) UpdateClaim(ctx context.Context, input claim.UpdateClaimInput) engine.Result[*domain.Claim] {
	if mock.UpdateClaimFunc == nil {
		panic("recordEngineMock.UpdateClaimFunc: method is nil but recordEngine.UpdateClaim was just called")
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

func (mock *recordEngineMock) UpdateClaimCalls() []struct {
	Ctx   context.Context
	Input claim.UpdateClaimInput
} {
	mock.lockUpdateClaim.RLock()
	calls := mock.calls.UpdateClaim
	mock.lockUpdateClaim.RUnlock()
	return calls
}

func (mock *recordEngineMock) CreateDocument(ctx context.Context, input document.CreateDocumentInput) engine.Result[*domain.Document] {
	if mock.CreateDocumentFunc == nil {
		panic("recordEngineMock.CreateDocumentFunc: method is nil but recordEngine.CreateDocument was just called")
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

func (mock *recordEngineMock) CreateDocumentCalls() []struct {
	Ctx   context.Context
	Input document.CreateDocumentInput
} {
	mock.lockCreateDocument.RLock()
	calls := mock.calls.CreateDocument
	mock.lockCreateDocument.RUnlock()
	return calls
}

func (mock *recordEngineMock) GetDocument(ctx context.Context, id uuid.UUID) engine.Result[*domain.Document] {
	if mock.GetDocumentFunc == nil {
		panic("recordEngineMock.GetDocumentFunc: method is nil but recordEngine.GetDocument was just called")
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

func (mock *recordEngineMock) GetDocumentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDocument.RLock()
	calls := mock.calls.GetDocument
	mock.lockGetDocument.RUnlock()
	return calls
}

func (mock *recordEngineMock) ListDocumentsByCustomer(ctx context.Context, customerID uuid.UUID) engine.Result[[]domain.Document] {
	if mock.ListDocumentsByCustomerFunc == nil {
		panic("recordEngineMock.ListDocumentsByCustomerFunc: method is nil but recordEngine.ListDocumentsByCustomer was just called")
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

func (mock *recordEngineMock) ListDocumentsByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockListDocumentsByCustomer.RLock()
	calls := mock.calls.ListDocumentsByCustomer
	mock.lockListDocumentsByCustomer.RUnlock()
	return calls
}

func (mock *recordEngineMock) ListDocumentsByPolicy(ctx context.Context, policyID uuid.UUID) engine.Result[[]domain.Document] {
	if mock.ListDocumentsByPolicyFunc == nil {
		panic("recordEngineMock.ListDocumentsByPolicyFunc: method is nil but recordEngine.ListDocumentsByPolicy was just called")
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

func (mock *recordEngineMock) ListDocumentsByPolicyCalls() []struct {
	Ctx      context.Context
	PolicyID uuid.UUID
} {
	mock.lockListDocumentsByPolicy.RLock()
	calls := mock.calls.ListDocumentsByPolicy
	mock.lockListDocumentsByPolicy.RUnlock()
	return calls
}

func (mock *recordEngineMock) UpdateDocument(ctx context.Context, input document.UpdateDocumentInput) engine.Result[*domain.Document] {
	if mock.UpdateDocumentFunc == nil {
		panic("recordEngineMock.UpdateDocumentFunc: method is nil but recordEngine.UpdateDocument was just called")
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

func (mock *recordEngineMock) UpdateDocumentCalls() []struct {
	Ctx   context.Context
	Input document.UpdateDocumentInput
} {
	mock.lockUpdateDocument.RLock()
	calls := mock.calls.UpdateDocument
	mock.lockUpdateDocument.RUnlock()
	return calls
}
