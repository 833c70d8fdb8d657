package models

// Identity is the authenticated user carried by a session. It is resolved
// once per request; task operations always take the owner id from here,
// never from client input.
type Identity struct {
	ID       string
	Username string
	Email    string
}
