package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// BurnPasswordCheck spends the same bcrypt work as CheckPasswordHash against a
// throwaway hash, so a login for an unknown email takes as long as one with a
// wrong password.
func BurnPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("unused-password"), bcrypt.DefaultCost)
		if err == nil {
			dummyHash = string(h)
		}
	})
	_ = CheckPasswordHash(password, dummyHash)
}
