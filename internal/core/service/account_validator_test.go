package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

func TestValidateRegistration_ValidInput(t *testing.T) {
	in := ports.RegisterInput{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "Str0ng!pass",
		RealName:    "Alice",
		RealSurname: "Doe",
		PhoneNumber: "+31 6 1234 5678",
	}
	if errs := validateRegistration(in); len(errs) > 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRegistration_OneErrorPerField(t *testing.T) {
	// Empty and too-long username must not both be reported.
	in := ports.RegisterInput{
		Username:    strings.Repeat("x", 51),
		Email:       "alice@example.com",
		Password:    "Str0ng!pass",
		RealName:    "Alice",
		RealSurname: "Doe",
	}
	errs := validateRegistration(in)
	if len(errs) != 1 {
		t.Fatalf("expected single violation, got %v", errs)
	}
	if !errors.Is(errs, domain.ErrUsernameTooLong) {
		t.Fatalf("expected ErrUsernameTooLong, got %v", errs)
	}
}

func TestValidateRegistration_FieldViolations(t *testing.T) {
	base := ports.RegisterInput{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "Str0ng!pass",
		RealName:    "Alice",
		RealSurname: "Doe",
	}

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
		want   domain.Error
	}{
		{"empty username", func(in *ports.RegisterInput) { in.Username = "  " }, domain.ErrUsernameRequired},
		{"empty email", func(in *ports.RegisterInput) { in.Email = "" }, domain.ErrEmailRequired},
		{"email too long", func(in *ports.RegisterInput) { in.Email = strings.Repeat("a", 145) + "@x.com" }, domain.ErrEmailTooLong},
		{"email missing at", func(in *ports.RegisterInput) { in.Email = "alice.example.com" }, domain.ErrInvalidEmail},
		{"email missing dot", func(in *ports.RegisterInput) { in.Email = "alice@example" }, domain.ErrInvalidEmail},
		{"empty password", func(in *ports.RegisterInput) { in.Password = "" }, domain.ErrPasswordRequired},
		{"password over 72 bytes", func(in *ports.RegisterInput) { in.Password = "Str0ng!" + strings.Repeat("x", 70) }, domain.ErrPasswordTooLong},
		{"short password", func(in *ports.RegisterInput) { in.Password = "S1!a" }, domain.ErrWeakPassword},
		{"no uppercase", func(in *ports.RegisterInput) { in.Password = "str0ng!pass" }, domain.ErrWeakPassword},
		{"no digit", func(in *ports.RegisterInput) { in.Password = "Strong!pass" }, domain.ErrWeakPassword},
		{"no special", func(in *ports.RegisterInput) { in.Password = "Str0ngpass" }, domain.ErrWeakPassword},
		{"empty real name", func(in *ports.RegisterInput) { in.RealName = "" }, domain.ErrRealNameRequired},
		{"real name too long", func(in *ports.RegisterInput) { in.RealName = strings.Repeat("a", 101) }, domain.ErrRealNameTooLong},
		{"empty surname", func(in *ports.RegisterInput) { in.RealSurname = "" }, domain.ErrRealSurnameRequired},
		{"phone too short", func(in *ports.RegisterInput) { in.PhoneNumber = "12345" }, domain.ErrInvalidPhoneNumber},
		{"phone with letters", func(in *ports.RegisterInput) { in.PhoneNumber = "06-abcd-12345" }, domain.ErrInvalidPhoneNumber},
		{"phone too long", func(in *ports.RegisterInput) { in.PhoneNumber = strings.Repeat("1", 31) }, domain.ErrPhoneNumberTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			errs := validateRegistration(in)
			if !errors.Is(errs, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, errs)
			}
		})
	}
}

func TestValidateRegistration_PasswordLengthBoundary(t *testing.T) {
	in := ports.RegisterInput{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "Str0ng!" + strings.Repeat("x", 65),
		RealName:    "Alice",
		RealSurname: "Doe",
	}
	if len(in.Password) != 72 {
		t.Fatalf("boundary password is %d bytes, want 72", len(in.Password))
	}
	if errs := validateRegistration(in); len(errs) != 0 {
		t.Fatalf("72-byte password rejected: %v", errs)
	}
}

func TestValidateRegistration_PhoneOptional(t *testing.T) {
	in := ports.RegisterInput{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "Str0ng!pass",
		RealName:    "Alice",
		RealSurname: "Doe",
		PhoneNumber: "",
	}
	if errs := validateRegistration(in); len(errs) > 0 {
		t.Fatalf("phone is optional, got %v", errs)
	}
}

func TestValidateUserID(t *testing.T) {
	if errs := validateUserID(0); !errors.Is(errs, domain.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", errs)
	}
	if errs := validateUserID(-5); !errors.Is(errs, domain.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", errs)
	}
	if errs := validateUserID(1); len(errs) > 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
