package service

import "golang.org/x/crypto/bcrypt"

// bcrypt work factor; high enough to make brute force expensive while
// keeping login latency in the tens of milliseconds.
const bcryptCost = 12

// BcryptHasher implements ports.PasswordHasher with bcrypt.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A malformed hash behaves
// exactly like a wrong password: it returns false, never an error.
func (BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
