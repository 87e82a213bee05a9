package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Package  string `validate:"required,package"`
	Date     string `validate:"required,isodate"`
	TimeSlot string `validate:"required,hourslot"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestCustomTags(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(sample{Package: "Gold", Date: "2026-10-20", TimeSlot: "10:00"}))
	assert.NoError(t, v.Struct(sample{Package: "diamond", Date: "2026-10-20", TimeSlot: "9:00"}))

	bad := []sample{
		{Package: "bronze", Date: "2026-10-20", TimeSlot: "10:00"},
		{Package: "gold", Date: "2026-02-30", TimeSlot: "10:00"},
		{Package: "gold", Date: "10/20/2026", TimeSlot: "10:00"},
		{Package: "gold", Date: "2026-10-20", TimeSlot: "10:30"},
		{Package: "gold", Date: "2026-10-20", TimeSlot: "10"},
	}
	for _, s := range bad {
		assert.Error(t, v.Struct(s), "%+v", s)
	}
}

func TestRegisterBindingsIsRepeatable(t *testing.T) {
	require.NoError(t, RegisterBindings())
	require.NoError(t, RegisterBindings())
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
	assert.False(t, IsEmailDomainValid("user@example.invalid"))
}

func TestErrorsUseJSONNames(t *testing.T) {
	v := newValidator(t)

	type req struct {
		VehicleType string `json:"vehicleType" validate:"required"`
	}

	err := v.Struct(req{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "vehicleType", verrs[0].Field())
}
