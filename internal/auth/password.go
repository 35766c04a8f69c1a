package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// ErrWeakPassword is wrapped by ValidatePassword with a message listing
// every unmet rule.
var ErrWeakPassword = errors.New("weak password")

// allowedSymbols is the punctuation set that satisfies the special-character
// rule of the password policy.
const allowedSymbols = `^@$!%*?&(){}:;<>,.~_+\/-`

const minPasswordLength = 10

// ValidatePassword checks the password complexity policy: at least 10
// characters with at least one lowercase letter, one uppercase letter, one
// digit and one symbol from the allowed set.
func ValidatePassword(password string) error {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(allowedSymbols, r):
			hasSymbol = true
		}
	}

	var missing []string
	if !hasUpper {
		missing = append(missing, "one uppercase letter (A)")
	}
	if !hasLower {
		missing = append(missing, "one lowercase letter (a)")
	}
	if !hasDigit {
		missing = append(missing, "one number (5)")
	}
	if !hasSymbol {
		missing = append(missing, "one special character (*)")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		missing = append(missing, "minimum 10 characters in total")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: password must include at least: %s",
			ErrWeakPassword, strings.Join(missing, ", "))
	}
	return nil
}

// HashPassword hashes a password with a random salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
