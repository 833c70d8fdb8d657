// Package models holds the domain entities shared by repositories, services
// and the web layer.
package models

import "time"

// User is an account record stored in the document store. ID is the hex form
// of the Mongo document id; tasks reference it as an opaque string.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
