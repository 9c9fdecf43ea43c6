package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 8

// PasswordSymbols is the set of characters that satisfy the symbol rule.
const PasswordSymbols = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// PasswordStrength is the per-criterion result of CheckPassword.
type PasswordStrength struct {
	Length bool
	Digit  bool
	Upper  bool
	Lower  bool
	Symbol bool
}

// CheckPassword evaluates every strength criterion independently.
func CheckPassword(password string) PasswordStrength {
	s := PasswordStrength{Length: utf8.RuneCountInString(password) >= MinPasswordLength}
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			s.Digit = true
		case unicode.IsUpper(r):
			s.Upper = true
		case unicode.IsLower(r):
			s.Lower = true
		case strings.ContainsRune(PasswordSymbols, r):
			s.Symbol = true
		}
	}
	return s
}

// Strong reports whether all five criteria pass.
func (s PasswordStrength) Strong() bool {
	return s.Length && s.Digit && s.Upper && s.Lower && s.Symbol
}

// Failures names each failing criterion in display order.
func (s PasswordStrength) Failures() []string {
	var out []string
	if !s.Length {
		out = append(out, "at least 8 characters")
	}
	if !s.Digit {
		out = append(out, "a digit")
	}
	if !s.Upper {
		out = append(out, "an uppercase letter")
	}
	if !s.Lower {
		out = append(out, "a lowercase letter")
	}
	if !s.Symbol {
		out = append(out, "a symbol ("+PasswordSymbols+")")
	}
	return out
}

// String renders the report for the terminal, e.g. "missing: a digit, a symbol (...)".
func (s PasswordStrength) String() string {
	if s.Strong() {
		return "strong"
	}
	return "missing: " + strings.Join(s.Failures(), ", ")
}
