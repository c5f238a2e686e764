package users

import "time"

// User is a row in the auth store. PasswordHash is a bcrypt hash and must
// never leave the service layer.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
