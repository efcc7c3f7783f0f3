package helpers

import "golang.org/x/crypto/bcrypt"

// Verifier abstracts how passwords are stored and checked. The service
// layer only ever compares through a Verifier, so the storage format can
// change without touching authentication semantics or message texts.
type Verifier interface {
	// Hash prepares a plain password for storage.
	Hash(plain string) (string, error)
	// Verify reports whether plain matches the stored value.
	Verify(stored, plain string) bool
}

// PlainVerifier stores passwords as received and compares by equality.
type PlainVerifier struct{}

func (PlainVerifier) Hash(plain string) (string, error) { return plain, nil }
func (PlainVerifier) Verify(stored, plain string) bool  { return stored == plain }

// BcryptVerifier hashes at the storage boundary with bcrypt.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(plain string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (v BcryptVerifier) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
