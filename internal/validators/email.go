package validators

import "regexp"

// emailPattern accepts local@domain.tld with a 2 to 7 letter top-level domain.
// The whole input must match.
var emailPattern = regexp.MustCompile(`^\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,7}\b$`)

// IsEmail reports whether s is a syntactically acceptable address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
