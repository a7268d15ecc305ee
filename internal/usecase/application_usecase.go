package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"pawnshop/internal/attachment"
	"pawnshop/internal/domain/entities"
	"pawnshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// idempotencyNamespace derives stable application ids from client-supplied
// idempotency keys, so a retried create lands on the same document.
var idempotencyNamespace = uuid.MustParse("9c9e0660-6f4f-4be6-9ba6-42a8a37c4d30")

// SubmitCommand is a customer's draft submission. Photos carry the raw
// uploaded bytes; the use case runs them through the attachment codec and
// drops the ones the codec rejects.
type SubmitCommand struct {
	Category       string
	Comment        string
	Photos         [][]byte
	IdempotencyKey string
}

// IApplicationUseCase exposes the application record lifecycle.
//
// Transition map:
//   - Submit            => creation, status UNDER_REVIEW
//   - Price (admin)     => UNDER_REVIEW -> AWAITING_CONFIRMATION
//   - Confirm (customer)=> AWAITING_CONFIRMATION -> APPROVED
//   - Decline (customer)=> AWAITING_CONFIRMATION -> REJECTED
type IApplicationUseCase interface {
	Submit(ctx context.Context, principal entities.Principal, cmd SubmitCommand) (entities.Application, error)
	GetByID(ctx context.Context, principal entities.Principal, id string) (entities.Application, error)
	List(ctx context.Context, principal entities.Principal) ([]entities.Application, error)
	Price(ctx context.Context, principal entities.Principal, id string, price float64, adminComment string) (entities.Application, error)
	Confirm(ctx context.Context, principal entities.Principal, id string, contact entities.ContactDetails) (entities.Application, error)
	Decline(ctx context.Context, principal entities.Principal, id string) (entities.Application, error)
}

type ApplicationUseCase struct {
	repo interfaces.IApplicationRepository
	feed interfaces.IChangeFeed
	log  *zap.Logger
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

func NewApplicationUseCase(repo interfaces.IApplicationRepository, feed interfaces.IChangeFeed, log *zap.Logger) *ApplicationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ApplicationUseCase{repo: repo, feed: feed, log: log}
}

func (u *ApplicationUseCase) Submit(ctx context.Context, principal entities.Principal, cmd SubmitCommand) (entities.Application, error) {
	if !entities.ValidCategory(cmd.Category) {
		return entities.Application{}, fmt.Errorf("%w: unknown category %q", entities.ErrValidation, cmd.Category)
	}
	if strings.TrimSpace(cmd.Comment) == "" {
		return entities.Application{}, fmt.Errorf("%w: comment must not be blank", entities.ErrValidation)
	}
	if len(cmd.Photos) > entities.MaxAttachments {
		return entities.Application{}, fmt.Errorf("%w: at most %d attachments allowed, got %d", entities.ErrValidation, entities.MaxAttachments, len(cmd.Photos))
	}

	photos := attachment.EncodeAll(cmd.Photos)
	if dropped := len(cmd.Photos) - len(photos); dropped > 0 {
		u.log.Warn("dropped undecodable attachments",
			zap.Int("dropped", dropped),
			zap.String("user_id", principal.UserID))
	}

	app := entities.Application{
		ID:          u.newID(cmd.IdempotencyKey),
		UserID:      principal.UserID,
		PhotoBase64: photos,
		Category:    cmd.Category,
		Comment:     cmd.Comment,
		Status:      entities.StatusUnderReview,
	}

	created, err := u.repo.Create(ctx, app)
	if err != nil {
		return entities.Application{}, err
	}

	u.publish(ctx, created.ID)
	return created, nil
}

func (u *ApplicationUseCase) GetByID(ctx context.Context, principal entities.Principal, id string) (entities.Application, error) {
	app, err := u.load(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if !principal.IsAdmin && app.UserID != principal.UserID {
		return entities.Application{}, entities.ErrForbidden
	}
	return app, nil
}

// List returns the current ordered snapshot: every record for an admin,
// the caller's own records otherwise.
func (u *ApplicationUseCase) List(ctx context.Context, principal entities.Principal) ([]entities.Application, error) {
	return u.repo.List(ctx, FilterFor(principal))
}

func (u *ApplicationUseCase) Price(ctx context.Context, principal entities.Principal, id string, price float64, adminComment string) (entities.Application, error) {
	if !principal.IsAdmin {
		return entities.Application{}, entities.ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, fmt.Errorf("%w: missing application id", entities.ErrValidation)
	}
	if price <= 0 {
		return entities.Application{}, fmt.Errorf("%w: price must be positive", entities.ErrValidation)
	}
	if strings.TrimSpace(adminComment) == "" {
		return entities.Application{}, fmt.Errorf("%w: admin comment must not be blank", entities.ErrValidation)
	}

	updated, err := u.repo.ApplyPricing(ctx, id, price, adminComment)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ID == "" {
		return entities.Application{}, entities.ErrApplicationNotFound
	}

	u.publish(ctx, updated.ID)
	return updated, nil
}

func (u *ApplicationUseCase) Confirm(ctx context.Context, principal entities.Principal, id string, contact entities.ContactDetails) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, fmt.Errorf("%w: missing application id", entities.ErrValidation)
	}
	if err := validateContact(contact); err != nil {
		return entities.Application{}, err
	}
	if err := u.authorizeOwner(ctx, principal, id); err != nil {
		return entities.Application{}, err
	}

	updated, err := u.repo.ApplyConfirmation(ctx, id, contact)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ID == "" {
		return entities.Application{}, entities.ErrApplicationNotFound
	}

	u.publish(ctx, updated.ID)
	return updated, nil
}

func (u *ApplicationUseCase) Decline(ctx context.Context, principal entities.Principal, id string) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, fmt.Errorf("%w: missing application id", entities.ErrValidation)
	}
	if err := u.authorizeOwner(ctx, principal, id); err != nil {
		return entities.Application{}, err
	}

	updated, err := u.repo.ApplyDecline(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ID == "" {
		return entities.Application{}, entities.ErrApplicationNotFound
	}

	u.publish(ctx, updated.ID)
	return updated, nil
}

// authorizeOwner ensures the caller owns the record before a customer
// transition. The status guard itself stays in the store-side conditional
// update; this check only scopes who may attempt it.
func (u *ApplicationUseCase) authorizeOwner(ctx context.Context, principal entities.Principal, id string) error {
	app, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if app.UserID != principal.UserID {
		return entities.ErrForbidden
	}
	return nil
}

func (u *ApplicationUseCase) load(ctx context.Context, id string) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, fmt.Errorf("%w: missing application id", entities.ErrValidation)
	}
	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, entities.ErrApplicationNotFound
	}
	return app, nil
}

// publish is best-effort: a lost event only delays watchers until the
// next one, so a feed failure must not fail the write that triggered it.
func (u *ApplicationUseCase) publish(ctx context.Context, id string) {
	if err := u.feed.Publish(ctx, interfaces.ChangeEvent{ApplicationID: id}); err != nil {
		u.log.Warn("change feed publish failed", zap.String("application_id", id), zap.Error(err))
	}
}

func (u *ApplicationUseCase) newID(idempotencyKey string) string {
	if key := strings.TrimSpace(idempotencyKey); key != "" {
		return uuid.NewSHA1(idempotencyNamespace, []byte(key)).String()
	}
	return uuid.NewString()
}

func validateContact(contact entities.ContactDetails) error {
	if strings.TrimSpace(contact.FullName) == "" {
		return fmt.Errorf("%w: full name must not be blank", entities.ErrValidation)
	}
	if strings.TrimSpace(contact.Address) == "" {
		return fmt.Errorf("%w: address must not be blank", entities.ErrValidation)
	}
	if !entities.ValidPaymentMethod(contact.PaymentMethod) {
		return fmt.Errorf("%w: unknown payment method %q", entities.ErrValidation, contact.PaymentMethod)
	}
	if contact.Phone == "" || len(contact.Phone) > 10 {
		return fmt.Errorf("%w: phone must be 1-10 digits", entities.ErrValidation)
	}
	for _, r := range contact.Phone {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: phone must contain digits only", entities.ErrValidation)
		}
	}
	return nil
}

// FilterFor derives the collection filter from the caller: admins see the
// whole triage board, customers only their own submissions.
func FilterFor(principal entities.Principal) interfaces.ApplicationFilter {
	if principal.IsAdmin {
		return interfaces.ApplicationFilter{}
	}
	return interfaces.ApplicationFilter{UserID: principal.UserID}
}
