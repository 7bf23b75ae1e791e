package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type loadRequest struct {
	Identifier string `validate:"required,registryid"`
}

func TestRegistryIdentifier(t *testing.T) {
	validate := validator.New()
	Register(validate)

	tests := []struct {
		identifier string
		valid      bool
	}{
		{"BC1234567", true},
		{"FM0001234", true},
		{"CP0000123", true},
		{"A0001234", true},
		{"A1234567", true},
		{"bc1234567", false},
		{"BC123456", false},
		{"BC12345678", false},
		{"BCXX1234567", false},
		{"BC 1234567", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			err := validate.Struct(&loadRequest{Identifier: tt.identifier})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegistryIdentifier_NonString(t *testing.T) {
	validate := validator.New()
	Register(validate)

	assert.Error(t, validate.Var(1234567, "registryid"))
}
