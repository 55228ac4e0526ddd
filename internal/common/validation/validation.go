package validation

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "supermercado-backend/internal/common/errors"
)

// Field length bounds. User and employee names share the same character set
// but differ in minimum length.
const (
	MinUserNameLength     = 2
	MinEmployeeNameLength = 3
	MaxNameLength         = 100
	MaxEmailLength        = 100
	MaxAddressLength      = 200

	MinSalary = 800000
	MaxSalary = 10000000
)

// Rule identifiers carried on validation errors.
const (
	RuleRequired = "required"
	RuleLength   = "length"
	RuleFormat   = "format"
	RuleRange    = "range"
)

var (
	// Letters and spaces only: digits, accents and hyphens are rejected.
	nameRegex  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

	// Colombian mobile format with optional country code, or a bare
	// ten-digit number.
	phoneIntlRegex  = regexp.MustCompile(`^\+?57\s?[0-9]{3}\s?[0-9]{3}\s?[0-9]{4}$`)
	phoneLocalRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

func validateName(field, name string, minLen int) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.Validation(field, RuleRequired, fmt.Sprintf("%s cannot be empty", field))
	}
	if len(name) < minLen || len(name) > MaxNameLength {
		return apperrors.Validation(field, RuleLength,
			fmt.Sprintf("%s must be between %d and %d characters", field, minLen, MaxNameLength))
	}
	if !nameRegex.MatchString(name) {
		return apperrors.Validation(field, RuleFormat,
			fmt.Sprintf("%s must contain only letters and spaces", field))
	}
	return nil
}

func UserName(name string) error {
	return validateName("name", name, MinUserNameLength)
}

func EmployeeName(name string) error {
	return validateName("nombre", name, MinEmployeeNameLength)
}

func Email(field, email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.Validation(field, RuleRequired, "email cannot be empty")
	}
	if len(email) > MaxEmailLength {
		return apperrors.Validation(field, RuleLength,
			fmt.Sprintf("email cannot exceed %d characters", MaxEmailLength))
	}
	if !emailRegex.MatchString(email) {
		return apperrors.Validation(field, RuleFormat, "email has an invalid format")
	}
	return nil
}

func Phone(field, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return apperrors.Validation(field, RuleRequired, "phone cannot be empty")
	}
	if !phoneIntlRegex.MatchString(phone) && !phoneLocalRegex.MatchString(phone) {
		return apperrors.Validation(field, RuleFormat,
			"phone must be a Colombian number (+57 XXX XXX XXXX) or ten digits")
	}
	return nil
}

func Address(address string) error {
	if strings.TrimSpace(address) == "" {
		return apperrors.Validation("address", RuleRequired, "address cannot be empty")
	}
	if len(address) > MaxAddressLength {
		return apperrors.Validation("address", RuleLength,
			fmt.Sprintf("address cannot exceed %d characters", MaxAddressLength))
	}
	return nil
}

func Cargo(cargo string) error {
	if strings.TrimSpace(cargo) == "" {
		return apperrors.Validation("cargo", RuleRequired, "cargo cannot be empty")
	}
	return nil
}

// Salario requires a positive salary within the inclusive allowed range.
func Salario(salario float64) error {
	if salario <= 0 {
		return apperrors.Validation("salario", RuleRange, "salario must be positive")
	}
	if salario < MinSalary || salario > MaxSalary {
		return apperrors.Validation("salario", RuleRange,
			fmt.Sprintf("salario must be between %d and %d", MinSalary, MaxSalary))
	}
	return nil
}
