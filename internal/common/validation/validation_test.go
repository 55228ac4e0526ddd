package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "supermercado-backend/internal/common/errors"
)

func TestUserName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		rule    string
	}{
		{"valid", "John Smith", false, ""},
		{"valid short", "Jo", false, ""},
		{"digits rejected", "John123", true, RuleFormat},
		{"empty", "", true, RuleRequired},
		{"too short", "J", true, RuleLength},
		{"hyphen rejected", "Mary-Jane", true, RuleFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UserName(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			assert.Equal(t, "name", appErr.Field)
			assert.Equal(t, tt.rule, appErr.Rule)
		})
	}
}

func TestEmployeeName(t *testing.T) {
	// Employee names need at least three characters.
	assert.Error(t, EmployeeName("Jo"))
	assert.NoError(t, EmployeeName("Ana"))

	appErr, ok := apperrors.AsAppError(EmployeeName("Jo"))
	require.True(t, ok)
	assert.Equal(t, "nombre", appErr.Field)
	assert.Equal(t, RuleLength, appErr.Rule)
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("email", "a@b.co"))
	assert.NoError(t, Email("email", "user+tag@example.com"))
	assert.Error(t, Email("email", "not-an-email"))
	assert.Error(t, Email("email", ""))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, Email("email", string(long[:90])+"@example.com"))
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("phone", "+57 300 123 4567"))
	assert.NoError(t, Phone("phone", "3001234567"))
	assert.NoError(t, Phone("phone", "57 300 123 4567"))
	assert.Error(t, Phone("phone", "12345"))
	assert.Error(t, Phone("phone", ""))
	assert.Error(t, Phone("phone", "+1 555 123 4567"))
}

func TestAddress(t *testing.T) {
	assert.NoError(t, Address("Calle 123 #45-67"))
	assert.Error(t, Address(""))
	assert.Error(t, Address("   "))

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	assert.Error(t, Address(string(long)))
}

func TestSalario(t *testing.T) {
	// Bounds are inclusive on both ends.
	assert.NoError(t, Salario(800000))
	assert.NoError(t, Salario(10000000))
	assert.Error(t, Salario(799999))
	assert.Error(t, Salario(10000001))
	assert.Error(t, Salario(0))
	assert.Error(t, Salario(-100))

	appErr, ok := apperrors.AsAppError(Salario(799999))
	require.True(t, ok)
	assert.Equal(t, "salario", appErr.Field)
	assert.Equal(t, RuleRange, appErr.Rule)
}

func TestCargo(t *testing.T) {
	assert.NoError(t, Cargo("Cajero"))
	assert.Error(t, Cargo(""))
	assert.Error(t, Cargo("  "))
}
