package order

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mudit2208/mehta-masala-storefront/internal/domain"
)

// Validation messages are user-facing; each check has its own error so
// handlers can surface exactly the first failing rule.
var (
	ErrNameRequired    = errors.New("Enter your name")
	ErrInvalidPhone    = errors.New("Enter valid 10-digit phone number")
	ErrInvalidEmail    = errors.New("Enter a valid email")
	ErrAddressTooShort = errors.New("Enter complete address")
	ErrCityRequired    = errors.New("Enter city")
	ErrInvalidPincode  = errors.New("Enter valid 6-digit pincode")
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidateCustomer checks the checkout form fields in a fixed order and
// returns the first failure: name, phone, email, address, city, pincode.
// Fields are trimmed before checking.
func ValidateCustomer(c domain.Customer) error {
	name := strings.TrimSpace(c.Name)
	phone := strings.TrimSpace(c.Phone)
	email := strings.TrimSpace(c.Email)
	address := strings.TrimSpace(c.Address)
	city := strings.TrimSpace(c.City)
	pin := strings.TrimSpace(c.Pincode)

	if name == "" {
		return ErrNameRequired
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if len(address) < 5 {
		return ErrAddressTooShort
	}
	if city == "" {
		return ErrCityRequired
	}
	if !pincodePattern.MatchString(pin) {
		return ErrInvalidPincode
	}
	return nil
}
