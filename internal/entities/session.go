package entities

// UserIdentity is the minimal identity kept alongside the bearer token.
type UserIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the authenticated identity for the current user. The token
// is an opaque bearer credential; its validity is enforced by the remote
// API, the client only checks a readable expiry claim when one exists.
type Session struct {
	Token string       `json:"token"`
	User  UserIdentity `json:"user"`
}
