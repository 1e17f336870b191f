package models

// AuthContext carries the identity of an authenticated caller.
// It is produced from a verified access token and passed explicitly
// to every owner-scoped operation.
type AuthContext struct {
	UserID int64
}

// TokenPair is issued on a successful login.
type TokenPair struct {
	Access  string
	Refresh string
}
