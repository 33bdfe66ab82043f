package entity

// User represents an account record. The password is stored as an
// opaque string; credential handling (hashing, verification) is the
// responsibility of an external collaborator, never this layer.
type User struct {
	ID       int64
	Username string
	Password string
}
