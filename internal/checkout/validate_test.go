package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() *Form {
	f := NewForm()
	f.Email = "a@b.co"
	f.FirstName = "Asha"
	f.LastName = "Shrestha"
	f.Address = "Milan Chowk, Ward 4, near the school"
	f.City = "butwal"
	f.ESewaID = "98111222"
	f.ESewaPassword = "secret"
	return f
}

func TestEmailRule(t *testing.T) {
	f := NewForm()

	tests := []struct {
		value string
		valid bool
	}{
		{"", false},
		{"bad-email", false},
		{"a b@c.co", false},
		{"a@b.co", true},
		{"someone@example.com", true},
	}
	for _, tt := range tests {
		msg := f.ValidateField(FieldEmail, tt.value)
		if tt.valid {
			assert.Empty(t, msg, "email %q", tt.value)
		} else {
			assert.NotEmpty(t, msg, "email %q", tt.value)
		}
	}
}

func TestNameRules(t *testing.T) {
	f := NewForm()

	assert.Equal(t, "First name is required", f.ValidateField(FieldFirstName, "  "))
	assert.Equal(t, "First name must be at least 2 characters", f.ValidateField(FieldFirstName, "A"))
	assert.Equal(t, "First name can only contain letters and spaces", f.ValidateField(FieldFirstName, "An4"))
	assert.Empty(t, f.ValidateField(FieldFirstName, "Asha"))
	assert.Empty(t, f.ValidateField(FieldLastName, "Kumari Thapa"))
}

func TestAddressAndCityRules(t *testing.T) {
	f := NewForm()

	assert.NotEmpty(t, f.ValidateField(FieldAddress, "short st"))
	assert.Empty(t, f.ValidateField(FieldAddress, "Milan Chowk, Ward 4"))

	assert.Equal(t, "Please select a city", f.ValidateField(FieldCity, ""))
	assert.Equal(t, "Please select a city", f.ValidateField(FieldCity, "kathmandu"))
	assert.Empty(t, f.ValidateField(FieldCity, "bhairahawa"))
	assert.Empty(t, f.ValidateField(FieldCity, "butwal"))
}

func TestKhaltiRules(t *testing.T) {
	f := NewForm()
	f.PaymentMethod = MethodKhalti

	assert.Empty(t, f.ValidateField(FieldKhaltiNumber, "9812345678"))
	assert.Empty(t, f.ValidateField(FieldKhaltiNumber, "98 1234 5678")) // whitespace stripped
	assert.NotEmpty(t, f.ValidateField(FieldKhaltiNumber, "12345678"))  // missing 98 prefix
	assert.NotEmpty(t, f.ValidateField(FieldKhaltiNumber, "981234567"))

	assert.Empty(t, f.ValidateField(FieldKhaltiMPIN, "1234"))
	assert.Equal(t, "MPIN must be 4 digits", f.ValidateField(FieldKhaltiMPIN, "12345"))
}

func TestPaymentFieldsInactiveForOtherMethods(t *testing.T) {
	f := NewForm()
	f.PaymentMethod = MethodCOD

	// COD requires no extra fields; esewa/khalti rules are dormant.
	assert.Empty(t, f.ValidateField(FieldESewaID, ""))
	assert.Empty(t, f.ValidateField(FieldKhaltiNumber, ""))
}

func TestValidateFullForm(t *testing.T) {
	f := validForm()
	assert.True(t, f.Validate())
	assert.Empty(t, f.Errors())

	f.Email = "bad-email"
	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors(), FieldEmail)
}

func TestValidateKhaltiForm(t *testing.T) {
	f := validForm()
	f.SetPaymentMethod(MethodKhalti)
	f.KhaltiNumber = "9812345678"
	f.KhaltiMPIN = "4321"
	assert.True(t, f.Validate())

	// eSewa fields are ignored under khalti even when empty.
	f.ESewaID = ""
	f.ESewaPassword = ""
	assert.True(t, f.Validate())
}

func TestErrorsGatedByTouched(t *testing.T) {
	f := NewForm()

	// Nothing shows before first interaction.
	assert.Empty(t, f.FieldError(FieldEmail))

	f.Blur(FieldEmail)
	assert.Equal(t, "Email is required", f.FieldError(FieldEmail))

	f.Email = "a@b.co"
	f.Blur(FieldEmail)
	assert.Empty(t, f.FieldError(FieldEmail))
}

func TestSubmitTouchesEverything(t *testing.T) {
	f := NewForm()
	f.Validate()

	assert.NotEmpty(t, f.FieldError(FieldEmail))
	assert.NotEmpty(t, f.FieldError(FieldCity))
	assert.NotEmpty(t, f.FieldError(FieldESewaID))
}

func TestSwitchingMethodClearsPaymentErrors(t *testing.T) {
	f := validForm()
	f.ESewaID = ""
	f.Validate()
	assert.NotEmpty(t, f.FieldError(FieldESewaID))

	f.SetPaymentMethod(MethodCOD)
	assert.Empty(t, f.FieldError(FieldESewaID))
	assert.True(t, f.Validate())
}
