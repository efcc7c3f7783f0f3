package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds whatever the configured password verifier stores:
// the plain text with PlainVerifier, a bcrypt hash with BcryptVerifier.
type User struct {
	ID               int64
	Name             string
	Email            string
	Password         string
	RegistrationDate time.Time
}
