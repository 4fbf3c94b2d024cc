package service

import (
	"golang.org/x/crypto/bcrypt"

	"food-delivery-api/pkg/apierror"
)

const DefaultBcryptCost = 12

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return PasswordHasher{cost: cost}
}

func (h PasswordHasher) Hash(plain string) (string, error) {
	if err := checkPasswordLength(plain); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (h PasswordHasher) Matches(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func checkPasswordLength(plain string) error {
	if len(plain) > maxPasswordBytes {
		return apierror.Validation("password must be at most 72 bytes")
	}
	return nil
}
