package player

import "context"

// Repository exposes the built-in player dataset to use cases.
type Repository interface {
	List(ctx context.Context) (Collection, error)
}
