// Package models defines the server-side row types and the partial-update
// payloads decoded from PATCH requests.
package models

import "time"

// User is an account row. PasswordHash is a bcrypt hash and never leaves the
// server.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
