package interfaces

import (
	"context"

	"pawnshop/internal/domain/entities"
)

//go:generate mockgen -source=application_repository_interface.go -destination=mocks/mock_application_repository.go -package=mock_interfaces

// ApplicationFilter scopes a collection read. The zero value means "all
// records" (admin view); a non-empty UserID restricts the snapshot to one
// customer's submissions. No other predicates exist.
type ApplicationFilter struct {
	UserID string
}

// IApplicationRepository owns every read and write of application records
// against the document store.
//
// Contract:
//   - GetByID returns a zero-value Application when the id does not
//     resolve; the use case maps that to not-found.
//   - List returns the full snapshot already sorted by (status lifecycle
//     order asc, submitted_at desc).
//   - The Apply* mutations are conditional on the expected current status
//     in the store itself: a caller that lost a concurrent race receives
//     entities.ErrInvalidTransition, never a silent overwrite.
//   - Transport failures surface wrapped in entities.ErrStoreUnavailable.
type IApplicationRepository interface {
	Create(ctx context.Context, app entities.Application) (entities.Application, error)
	GetByID(ctx context.Context, id string) (entities.Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]entities.Application, error)
	ApplyPricing(ctx context.Context, id string, price float64, adminComment string) (entities.Application, error)
	ApplyConfirmation(ctx context.Context, id string, contact entities.ContactDetails) (entities.Application, error)
	ApplyDecline(ctx context.Context, id string) (entities.Application, error)
}
