package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmapi/pkg/apperr"
)

type payload struct {
	Name  string   `json:"name" validate:"required,max=5"`
	Area  *float64 `json:"area" validate:"required,gte=0"`
	Notes string   `json:"notes"`
}

func ptr(f float64) *float64 { return &f }

func TestStructOK(t *testing.T) {
	assert.NoError(t, New().Struct(payload{Name: "rice", Area: ptr(0)}))
}

func TestStructReportsAllMissingFieldsByJSONName(t *testing.T) {
	err := New().Struct(payload{})
	require.Error(t, err)

	assert.ErrorIs(t, err, apperr.ErrMissingField)
	assert.Equal(t, "missing required field: name, area", apperr.PublicMessage(err))
}

func TestStructRejectsNegative(t *testing.T) {
	err := New().Struct(payload{Name: "rice", Area: ptr(-1)})
	require.Error(t, err)

	assert.ErrorIs(t, err, apperr.ErrInvalidField)
	assert.Equal(t, "area must be greater than or equal to 0", apperr.PublicMessage(err))
}

func TestStructRejectsTooLong(t *testing.T) {
	err := New().Struct(payload{Name: "sugarcane", Area: ptr(1)})
	assert.ErrorIs(t, err, apperr.ErrInvalidField)
}
