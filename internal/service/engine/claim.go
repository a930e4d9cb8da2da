package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/claim"
)

func (e *Engine) CreateClaim(ctx context.Context, input claim.CreateClaimInput) Result[*domain.Claim] {
	return run(ctx, e, "CreateClaim", domain.EntityKindClaim, func() (*domain.Claim, error) {
		return e.claims.CreateClaim(ctx, input)
	})
}

func (e *Engine) GetClaim(ctx context.Context, id uuid.UUID) Result[*domain.Claim] {
	return run(ctx, e, "GetClaim", domain.EntityKindClaim, func() (*domain.Claim, error) {
		return e.claims.GetClaim(ctx, id)
	})
}

func (e *Engine) ListClaimsByCustomer(ctx context.Context, customerID uuid.UUID) Result[[]domain.Claim] {
	return run(ctx, e, "ListClaimsByCustomer", domain.EntityKindClaim, func() ([]domain.Claim, error) {
		return e.claims.ListClaimsByCustomer(ctx, customerID)
	})
}

func (e *Engine) ListClaimsByPolicy(ctx context.Context, policyID uuid.UUID) Result[[]domain.Claim] {
	return run(ctx, e, "ListClaimsByPolicy", domain.EntityKindClaim, func() ([]domain.Claim, error) {
		return e.claims.ListClaimsByPolicy(ctx, policyID)
	})
}

func (e *Engine) UpdateClaim(ctx context.Context, input claim.UpdateClaimInput) Result[*domain.Claim] {
	return run(ctx, e, "UpdateClaim", domain.EntityKindClaim, func() (*domain.Claim, error) {
		return e.claims.UpdateClaim(ctx, input)
	})
}
