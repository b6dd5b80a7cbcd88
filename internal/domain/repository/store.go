package repository

import "context"

// Store exposes the transaction boundary the mutation services run inside:
// entity write, activity-log append and outbox append share one WithTx call.
type Store interface {
	Ping(ctx context.Context) error
	Close()
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
