// Package ownership resolves the calling principal and enforces that every
// operation runs on behalf of one.
package ownership

import (
	"context"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/pkg/ctxutil"
)

// Resolver supplies the identity of the current caller.
type Resolver interface {
	ResolveCurrentPrincipal(ctx context.Context) (domain.Principal, bool)
}

// CtxResolver reads the principal that transport middleware stored in the context.
type CtxResolver struct{}

func (CtxResolver) ResolveCurrentPrincipal(ctx context.Context) (domain.Principal, bool) {
	id, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return "", false
	}
	return domain.Principal(id), true
}

// Guard rejects calls that carry no principal.
type Guard struct {
	resolver Resolver
}

// NewGuard creates a Guard backed by resolver.
func NewGuard(resolver Resolver) *Guard {
	return &Guard{resolver: resolver}
}

// Authorize returns the caller's principal or domain.ErrUnauthorized.
func (g *Guard) Authorize(ctx context.Context) (domain.Principal, error) {
	p, ok := g.resolver.ResolveCurrentPrincipal(ctx)
	if !ok || p.IsZero() {
		return "", domain.ErrUnauthorized
	}
	return p, nil
}
