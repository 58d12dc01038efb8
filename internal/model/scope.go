package model

// Scope identifies the signed-in user a request acts for.
type Scope struct {
	UserID string
	Token  string
}
