package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/customer"
)

func (e *Engine) CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) Result[*domain.Customer] {
	return run(ctx, e, "CreateCustomer", domain.EntityKindCustomer, func() (*domain.Customer, error) {
		return e.customers.CreateCustomer(ctx, input)
	})
}

func (e *Engine) GetCustomer(ctx context.Context, id uuid.UUID) Result[*domain.Customer] {
	return run(ctx, e, "GetCustomer", domain.EntityKindCustomer, func() (*domain.Customer, error) {
		return e.customers.GetCustomer(ctx, id)
	})
}

func (e *Engine) ListCustomers(ctx context.Context, includeErased bool) Result[[]domain.Customer] {
	return run(ctx, e, "ListCustomers", domain.EntityKindCustomer, func() ([]domain.Customer, error) {
		return e.customers.ListCustomers(ctx, includeErased)
	})
}

func (e *Engine) UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) Result[*domain.Customer] {
	return run(ctx, e, "UpdateCustomer", domain.EntityKindCustomer, func() (*domain.Customer, error) {
		return e.customers.UpdateCustomer(ctx, input)
	})
}

// SoftDeleteCustomer erases a customer. Erasing twice succeeds.
func (e *Engine) SoftDeleteCustomer(ctx context.Context, id uuid.UUID) Result[*domain.Customer] {
	return run(ctx, e, "SoftDeleteCustomer", domain.EntityKindCustomer, func() (*domain.Customer, error) {
		return e.customers.SoftDeleteCustomer(ctx, id)
	})
}
