package encryption

import (
	"fmt"
	"strings"
	"unicode"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
)

// DefaultPasswordLength is the length GenerateSecurePassword callers use when unset.
const DefaultPasswordLength = 32

const passwordCharset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()_+-=[]{}|;:,.<>?"

// PasswordStrength is advisory feedback on a password, not a guarantee.
type PasswordStrength struct {
	Score              int
	Feedback           []string
	EstimatedCrackTime string
}

// GenerateSecurePassword returns length characters drawn from random bytes
// mapped onto a mixed-class charset.
func GenerateSecurePassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: %d", verrors.ErrInvalidPasswordLength, length)
	}

	b, err := randomBytes(length)
	if err != nil {
		return "", err
	}
	defer wipe(b)

	var sb strings.Builder
	sb.Grow(length)
	for _, c := range b {
		sb.WriteByte(passwordCharset[int(c)%len(passwordCharset)])
	}
	return sb.String(), nil
}

// EstimatePasswordStrength scores a password on length and character classes.
// Scores run from 0 to 6.
func EstimatePasswordStrength(password string) PasswordStrength {
	var s PasswordStrength

	switch n := len([]rune(password)); {
	case n >= 12:
		s.Score += 2
	case n >= 8:
		s.Score++
		s.Feedback = append(s.Feedback, "Use at least 12 characters")
	default:
		s.Feedback = append(s.Feedback, "Use at least 12 characters")
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			symbol = true
		}
	}

	classes := []struct {
		present  bool
		feedback string
	}{
		{lower, "Add lowercase letters"},
		{upper, "Add uppercase letters"},
		{digit, "Add numbers"},
		{symbol, "Add special characters"},
	}
	for _, c := range classes {
		if c.present {
			s.Score++
		} else {
			s.Feedback = append(s.Feedback, c.feedback)
		}
	}

	s.EstimatedCrackTime = crackTimeForScore(s.Score)
	return s
}

func crackTimeForScore(score int) string {
	switch {
	case score >= 6:
		return "centuries"
	case score >= 5:
		return "years"
	case score >= 4:
		return "months"
	case score >= 3:
		return "days"
	default:
		return "minutes"
	}
}
