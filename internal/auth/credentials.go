package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single operator account allowed to write.
// PasswordHash is a bcrypt hash; an empty hash disables login.
type AdminCredentials struct {
	User         string
	PasswordHash string
}

// Enabled reports whether login is possible at all.
func (a AdminCredentials) Enabled() bool {
	return a.User != "" && a.PasswordHash != ""
}

// Verify checks user and password. The user name comparison is constant time.
func (a AdminCredentials) Verify(user, password string) bool {
	if !a.Enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.User)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
	return userOK && passOK
}

// HashPassword produces the bcrypt hash stored in AUTH_ADMIN_PASSWORD_HASH.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
