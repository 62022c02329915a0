// Package checkout validates the checkout contact/address/payment form.
// Every rule returns an empty string when the field is valid, or the
// human-readable message shown inline under the field.
package checkout

import (
	"regexp"
	"strings"
)

// Payment methods.
const (
	MethodESewa  = "esewa"
	MethodKhalti = "khalti"
	MethodCOD    = "cod"
)

// Field names.
const (
	FieldEmail         = "email"
	FieldFirstName     = "firstName"
	FieldLastName      = "lastName"
	FieldAddress       = "address"
	FieldCity          = "city"
	FieldESewaID       = "esewaId"
	FieldESewaPassword = "esewaPassword"
	FieldKhaltiNumber  = "khaltiNumber"
	FieldKhaltiMPIN    = "khaltiMpin"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern   = regexp.MustCompile(`^[a-zA-Z\s]*$`)
	khaltiPattern = regexp.MustCompile(`^98[0-9]{8}$`)
	whitespace    = regexp.MustCompile(`\s`)
)

// Cities served by delivery.
var Cities = []string{"bhairahawa", "butwal"}

func validCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

// paymentFields maps a method to the fields it owns.
var paymentFields = map[string][]string{
	MethodESewa:  {FieldESewaID, FieldESewaPassword},
	MethodKhalti: {FieldKhaltiNumber, FieldKhaltiMPIN},
	MethodCOD:    {},
}

// Form carries the entered values plus the validation bookkeeping. Error
// display is gated per field by the touched flag, set on first blur or on
// a submit attempt.
type Form struct {
	Email     string
	FirstName string
	LastName  string
	Address   string
	City      string
	Area      string // optional, never validated

	PaymentMethod string
	ESewaID       string
	ESewaPassword string
	KhaltiNumber  string
	KhaltiMPIN    string

	errors  map[string]string
	touched map[string]bool
}

// NewForm starts an untouched form with the first payment option active.
func NewForm() *Form {
	return &Form{
		PaymentMethod: MethodESewa,
		errors:        map[string]string{},
		touched:       map[string]bool{},
	}
}

// ValidateField runs one field's rule against a value and returns the
// inline message, or "" when valid. Payment fields only validate while
// their method is active.
func (f *Form) ValidateField(name, value string) string {
	trimmed := strings.TrimSpace(value)

	switch name {
	case FieldEmail:
		if trimmed == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email address"
		}

	case FieldFirstName:
		if trimmed == "" {
			return "First name is required"
		}
		if len(trimmed) < 2 {
			return "First name must be at least 2 characters"
		}
		if !namePattern.MatchString(value) {
			return "First name can only contain letters and spaces"
		}

	case FieldLastName:
		if trimmed == "" {
			return "Last name is required"
		}
		if len(trimmed) < 2 {
			return "Last name must be at least 2 characters"
		}
		if !namePattern.MatchString(value) {
			return "Last name can only contain letters and spaces"
		}

	case FieldAddress:
		if trimmed == "" {
			return "Address is required"
		}
		if len(trimmed) < 10 {
			return "Please enter a complete address (at least 10 characters)"
		}

	case FieldCity:
		if trimmed == "" {
			return "Please select a city"
		}
		if !validCity(trimmed) {
			return "Please select a city"
		}

	case FieldESewaID:
		if f.PaymentMethod == MethodESewa && trimmed == "" {
			return "eSewa ID is required"
		}
		if f.PaymentMethod == MethodESewa && len(trimmed) < 5 {
			return "Please enter a valid eSewa ID"
		}

	case FieldESewaPassword:
		if f.PaymentMethod == MethodESewa && trimmed == "" {
			return "eSewa password is required"
		}

	case FieldKhaltiNumber:
		if f.PaymentMethod == MethodKhalti && trimmed == "" {
			return "Khalti number is required"
		}
		if f.PaymentMethod == MethodKhalti && !khaltiPattern.MatchString(whitespace.ReplaceAllString(value, "")) {
			return "Please enter a valid Khalti number (98XXXXXXXX)"
		}

	case FieldKhaltiMPIN:
		if f.PaymentMethod == MethodKhalti && trimmed == "" {
			return "Khalti MPIN is required"
		}
		if f.PaymentMethod == MethodKhalti && len(value) != 4 {
			return "MPIN must be 4 digits"
		}
	}

	return ""
}

func (f *Form) fieldValue(name string) string {
	switch name {
	case FieldEmail:
		return f.Email
	case FieldFirstName:
		return f.FirstName
	case FieldLastName:
		return f.LastName
	case FieldAddress:
		return f.Address
	case FieldCity:
		return f.City
	case FieldESewaID:
		return f.ESewaID
	case FieldESewaPassword:
		return f.ESewaPassword
	case FieldKhaltiNumber:
		return f.KhaltiNumber
	case FieldKhaltiMPIN:
		return f.KhaltiMPIN
	}
	return ""
}

func (f *Form) contactFields() []string {
	return []string{FieldEmail, FieldFirstName, FieldLastName, FieldAddress, FieldCity}
}

// Blur marks a field touched and refreshes its error.
func (f *Form) Blur(name string) {
	f.touched[name] = true
	f.errors[name] = f.ValidateField(name, f.fieldValue(name))
}

// Validate runs every applicable rule, marks all fields touched (a submit
// attempt surfaces everything at once) and reports whether the form can be
// submitted.
func (f *Form) Validate() bool {
	fields := append(f.contactFields(), paymentFields[f.PaymentMethod]...)
	valid := true
	for _, name := range fields {
		f.touched[name] = true
		msg := f.ValidateField(name, f.fieldValue(name))
		f.errors[name] = msg
		if msg != "" {
			valid = false
		}
	}
	return valid
}

// SetPaymentMethod switches the active method and clears the errors of all
// payment fields so stale messages from the previous method never show.
func (f *Form) SetPaymentMethod(method string) {
	f.PaymentMethod = method
	for _, fields := range paymentFields {
		for _, name := range fields {
			f.errors[name] = ""
		}
	}
}

// FieldError returns the message to display for a field: nothing until the
// field has been touched.
func (f *Form) FieldError(name string) string {
	if !f.touched[name] {
		return ""
	}
	return f.errors[name]
}

// Errors returns the non-empty messages of all touched fields.
func (f *Form) Errors() map[string]string {
	out := map[string]string{}
	for name, msg := range f.errors {
		if msg != "" && f.touched[name] {
			out[name] = msg
		}
	}
	return out
}
