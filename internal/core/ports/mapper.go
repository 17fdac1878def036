package ports

import "github.com/edusync/schoolclient/internal/wire"

// Mapper is the per-entity wire codec a store translates through.
// E is the cached entity, D the create draft, P the sparse patch.
//
// FromWire returns an error wrapping domain.ErrMissingID when the record has
// no resolvable identifier; the store drops such records from loads.
// DraftToWire and PatchToWire must be sparse: absent fields are omitted from
// the payload so partial updates never clobber server-side state.
type Mapper[E, D, P any] interface {
	FromWire(wire.Record) (E, error)
	DraftToWire(D) wire.Record
	PatchToWire(P) wire.Record
	ID(E) string
	Merge(E, P) E
}
