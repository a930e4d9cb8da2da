package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/policy"
)

func (e *Engine) CreatePolicy(ctx context.Context, input policy.CreatePolicyInput) Result[*domain.Policy] {
	return run(ctx, e, "CreatePolicy", domain.EntityKindPolicy, func() (*domain.Policy, error) {
		return e.policies.CreatePolicy(ctx, input)
	})
}

func (e *Engine) GetPolicy(ctx context.Context, id uuid.UUID) Result[*domain.Policy] {
	return run(ctx, e, "GetPolicy", domain.EntityKindPolicy, func() (*domain.Policy, error) {
		return e.policies.GetPolicy(ctx, id)
	})
}

func (e *Engine) ListPoliciesByCustomer(ctx context.Context, customerID uuid.UUID) Result[[]domain.Policy] {
	return run(ctx, e, "ListPoliciesByCustomer", domain.EntityKindPolicy, func() ([]domain.Policy, error) {
		return e.policies.ListPoliciesByCustomer(ctx, customerID)
	})
}

func (e *Engine) UpdatePolicy(ctx context.Context, input policy.UpdatePolicyInput) Result[*domain.Policy] {
	return run(ctx, e, "UpdatePolicy", domain.EntityKindPolicy, func() (*domain.Policy, error) {
		return e.policies.UpdatePolicy(ctx, input)
	})
}

// HardDeletePolicy removes a policy and its audit trail permanently.
func (e *Engine) HardDeletePolicy(ctx context.Context, id uuid.UUID) Result[struct{}] {
	return run(ctx, e, "HardDeletePolicy", domain.EntityKindPolicy, func() (struct{}, error) {
		return struct{}{}, e.policies.HardDeletePolicy(ctx, id)
	})
}
