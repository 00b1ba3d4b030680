package validate

import "regexp"

var (
	upiRe   = regexp.MustCompile(`^[\w.-]+@\w+$`)
	utrRe   = regexp.MustCompile(`^\d{12}$`)
	phoneRe = regexp.MustCompile(`^\+?\d{10,14}$`)
)

// IsUPI reports whether s looks like a UPI payment handle (name@psp).
func IsUPI(s string) bool {
	return upiRe.MatchString(s)
}

// IsUTR reports whether s is a 12-digit bank transfer reference.
func IsUTR(s string) bool {
	return utrRe.MatchString(s)
}

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}
