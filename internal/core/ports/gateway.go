package ports

import (
	"context"

	"github.com/edusync/schoolclient/internal/wire"
)

// Gateway is the transport contract the stores and the session manager call.
// Implementations attach the persisted credential on every outbound request
// and report a 401 through a registered eviction callback before returning
// the error to the caller.
type Gateway interface {
	GetList(ctx context.Context, path string) ([]wire.Record, error)
	Post(ctx context.Context, path string, body wire.Record) (wire.Record, error)
	Patch(ctx context.Context, path string, body wire.Record) (wire.Record, error)
	Delete(ctx context.Context, path string) error
}
