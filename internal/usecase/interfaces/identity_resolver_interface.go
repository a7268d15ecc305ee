package interfaces

import (
	"context"

	"pawnshop/internal/domain/entities"
)

//go:generate mockgen -source=identity_resolver_interface.go -destination=mocks/mock_identity_resolver.go -package=mock_interfaces

// IIdentityResolver resolves an opaque caller token to a principal.
// Credential management (sign-up, sign-in) belongs to the identity
// platform; this service only consumes the resolution. An unknown or
// empty token yields entities.ErrUnauthenticated.
type IIdentityResolver interface {
	CurrentPrincipal(ctx context.Context, token string) (entities.Principal, error)
}
