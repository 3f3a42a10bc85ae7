package entity

import "regexp"

// PhoneNumberPattern matches an optional +country prefix followed by 4 to 14
// digit groups separated by spaces or dashes.
var PhoneNumberPattern = regexp.MustCompile(`^(\+\d+)?([ -]?\d+){4,14}$`)

// Customer is the person an order is placed for. It is owned by its order.
type Customer struct {
	ID          int64
	Version     int
	FullName    string
	PhoneNumber string
	Details     string // Optional free text.
}

// ValidPhoneNumber reports whether phone matches PhoneNumberPattern.
func ValidPhoneNumber(phone string) bool {
	return PhoneNumberPattern.MatchString(phone)
}
