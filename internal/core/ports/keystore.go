package ports

// Storage keys for the persisted session. Written together on login, cleared
// together on logout or on a 401.
const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"
)

// KeyStore is the persisted key/value storage for the session pair. Each key
// is atomic on its own; Delete of an absent key is a no-op, which is what
// makes eviction idempotent without a lock.
type KeyStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
