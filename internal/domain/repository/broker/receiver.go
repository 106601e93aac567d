package broker

import "context"

// Receiver streams messages for one named consumer of the group until ctx
// is done.
type Receiver interface {
	Messages(ctx context.Context, consumerName string) (<-chan Message, error)
}
