package pages

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-()]+$`)
)

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

// validPhone accepts digits with common separators, at least ten characters.
func validPhone(phone string) bool {
	return len(phone) >= 10 && phoneRe.MatchString(phone)
}
