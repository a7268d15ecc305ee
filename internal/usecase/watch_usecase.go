package usecase

import (
	"context"
	"reflect"

	"pawnshop/internal/domain/entities"
	"pawnshop/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ApplicationSnapshot is one emission of a point watch: the current value
// of the record, or Found=false when it does not exist (or is not visible
// to the caller).
type ApplicationSnapshot struct {
	Application entities.Application
	Found       bool
}

// IWatchUseCase exposes the live-query side of the repository: infinite
// streams of re-materialized snapshots, one emission per observed change,
// terminated only by cancelling the caller's context.
type IWatchUseCase interface {
	WatchByID(ctx context.Context, principal entities.Principal, id string) (<-chan ApplicationSnapshot, error)
	WatchCollection(ctx context.Context, principal entities.Principal) (<-chan []entities.Application, error)
}

// WatchUseCase turns change-feed events into ordered, deduplicated
// snapshots. Every subscription owns exactly one goroutine and one feed
// listener; cancelling the context tears both down and closes the output
// channel.
type WatchUseCase struct {
	repo interfaces.IApplicationRepository
	feed interfaces.IChangeFeed
	log  *zap.Logger
}

var _ IWatchUseCase = (*WatchUseCase)(nil)

func NewWatchUseCase(repo interfaces.IApplicationRepository, feed interfaces.IChangeFeed, log *zap.Logger) *WatchUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &WatchUseCase{repo: repo, feed: feed, log: log}
}

// WatchByID streams the current value of one record: an immediate initial
// snapshot, then one per change event for that id. Records the caller may
// not see (another customer's submission) are reported as absent rather
// than leaking data.
func (w *WatchUseCase) WatchByID(ctx context.Context, principal entities.Principal, id string) (<-chan ApplicationSnapshot, error) {
	events, err := w.feed.Subscribe(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan ApplicationSnapshot, 1)
	go func() {
		defer close(out)

		last, ok := w.pointSnapshot(ctx, principal, id)
		if !ok {
			return
		}
		if !emit(ctx, out, last) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case ev, open := <-events:
				if !open {
					return
				}
				if ev.ApplicationID != id {
					continue
				}
				snap, ok := w.pointSnapshot(ctx, principal, id)
				if !ok {
					return
				}
				if reflect.DeepEqual(snap, last) {
					continue
				}
				last = snap
				if !emit(ctx, out, snap) {
					return
				}
			}
		}
	}()
	return out, nil
}

// WatchCollection streams the full ordered list matching the caller's
// filter. Each emission is the complete snapshot, not a diff; expected
// per-view record counts are small enough that simplicity wins over
// bandwidth.
func (w *WatchUseCase) WatchCollection(ctx context.Context, principal entities.Principal) (<-chan []entities.Application, error) {
	events, err := w.feed.Subscribe(ctx)
	if err != nil {
		return nil, err
	}
	filter := FilterFor(principal)

	out := make(chan []entities.Application, 1)
	go func() {
		defer close(out)

		last, ok := w.listSnapshot(ctx, filter)
		if !ok {
			return
		}
		if !emit(ctx, out, last) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, open := <-events:
				if !open {
					return
				}
				snap, ok := w.listSnapshot(ctx, filter)
				if !ok {
					return
				}
				// Events for records outside the filter re-materialize an
				// identical snapshot; skip the duplicate emission.
				if reflect.DeepEqual(snap, last) {
					continue
				}
				last = snap
				if !emit(ctx, out, snap) {
					return
				}
			}
		}
	}()
	return out, nil
}

func (w *WatchUseCase) pointSnapshot(ctx context.Context, principal entities.Principal, id string) (ApplicationSnapshot, bool) {
	app, err := w.repo.GetByID(ctx, id)
	if err != nil {
		w.log.Error("watch reload failed", zap.String("application_id", id), zap.Error(err))
		return ApplicationSnapshot{}, false
	}
	if app.ID == "" {
		return ApplicationSnapshot{}, true
	}
	if !principal.IsAdmin && app.UserID != principal.UserID {
		return ApplicationSnapshot{}, true
	}
	return ApplicationSnapshot{Application: app, Found: true}, true
}

func (w *WatchUseCase) listSnapshot(ctx context.Context, filter interfaces.ApplicationFilter) ([]entities.Application, bool) {
	apps, err := w.repo.List(ctx, filter)
	if err != nil {
		w.log.Error("watch reload failed", zap.String("filter_user_id", filter.UserID), zap.Error(err))
		return nil, false
	}
	return apps, true
}

// emit delivers a snapshot unless the subscription was cancelled first.
func emit[T any](ctx context.Context, out chan<- T, value T) bool {
	select {
	case out <- value:
		return true
	case <-ctx.Done():
		return false
	}
}
