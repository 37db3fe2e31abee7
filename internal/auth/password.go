package auth

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// HashCost is the fixed bcrypt cost factor for password hashing
const HashCost = 10

// HashPassword derives a salted one-way hash from a plaintext password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
