package models

import "time"

// RefreshToken is a server-stored opaque token used to mint new access
// tokens. Tokens are rotated on every refresh.
type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}
