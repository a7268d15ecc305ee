package interfaces

import "context"

//go:generate mockgen -source=change_feed_interface.go -destination=mocks/mock_change_feed.go -package=mock_interfaces

// ChangeEvent announces that one application document changed. Watchers
// re-materialize their snapshot from the store on every event; the event
// itself carries no document data.
type ChangeEvent struct {
	ApplicationID string
}

// IChangeFeed is the push channel between writers and live watchers.
//
// Subscribe returns a channel that delivers every event published after
// the subscription is established. Cancelling the context stops delivery,
// closes the channel and releases the underlying listener; no goroutine
// outlives its subscription.
type IChangeFeed interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}
