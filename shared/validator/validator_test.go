package validator_test

import (
	"nirvanica/shared/failure"
	"nirvanica/shared/validator"
	"strings"
	"testing"
)

// Test structs for validation
type GuestTestStruct struct {
	Name  string `validate:"required" json:"name"`
	Email string `validate:"required,email" json:"email"`
	Phone string `validate:"required,phone" json:"phone"`
	Rooms int    `validate:"gte=1,lte=12" json:"rooms"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *GuestTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &GuestTestStruct{
				Name:  "Asha Nair",
				Email: "asha@example.com",
				Phone: "+91 98765 43210",
				Rooms: 2,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &GuestTestStruct{
				Email: "asha@example.com",
				Phone: "+91 98765 43210",
				Rooms: 2,
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &GuestTestStruct{
				Name:  "Asha Nair",
				Email: "invalid-email",
				Phone: "+91 98765 43210",
				Rooms: 2,
			},
			expectError: true,
		},
		{
			name: "rooms out of range",
			data: &GuestTestStruct{
				Name:  "Asha Nair",
				Email: "asha@example.com",
				Phone: "+91 98765 43210",
				Rooms: 13,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if tt.expectError && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateStructCollectsAllViolations(t *testing.T) {
	data := &GuestTestStruct{
		Email: "not-an-email",
		Phone: "abc",
		Rooms: 0,
	}

	err := validator.ValidateStruct(data)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	fields := failure.GetFields(err)
	if len(fields) != 4 {
		t.Fatalf("expected 4 collected violations, got %d: %v", len(fields), fields)
	}

	seen := map[string]bool{}
	for _, f := range fields {
		seen[f.Field] = true
	}

	for _, want := range []string{"name", "email", "phone", "rooms"} {
		if !seen[want] {
			t.Errorf("expected a violation for field %q", want)
		}
	}
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"plain digits", "9876543210", true},
		{"international with formatting", "+91 (487) 555-0123", true},
		{"too few digits", "+91 12345", false},
		{"letters rejected", "98765abcde", false},
		{"plus in the middle rejected", "98+76543210", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.phone, "phone")
			if tt.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tt.phone, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to be rejected", tt.phone)
			}
		})
	}
}

func TestValidateDecodesBody(t *testing.T) {
	body := strings.NewReader(`{"name":"Asha Nair","email":"asha@example.com","phone":"9876543210","rooms":1}`)

	var data GuestTestStruct
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	if data.Name != "Asha Nair" {
		t.Errorf("decoded name = %q", data.Name)
	}
}

func TestValidateRejectsMalformedBody(t *testing.T) {
	body := strings.NewReader(`{"name":`)

	var data GuestTestStruct
	if err := validator.Validate(body, &data); err == nil {
		t.Fatal("expected a decode error")
	}
}
