package validation

import (
	"testing"

	"reel-go/internal/api/dto"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIdempotent(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}

func TestDisplayNameRule(t *testing.T) {
	require.NoError(t, Register())

	valid := dto.RegisterRequest{Name: "Alice", Email: "a@example.com", Password: "secret1", DisplayName: "Alice_01"}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	invalid := valid
	invalid.DisplayName = "alice smith"
	err := binding.Validator.ValidateStruct(&invalid)
	require.Error(t, err)

	field, msg, ok := FieldError(err)
	require.True(t, ok)
	assert.Equal(t, "display_name", field)
	assert.Contains(t, msg, "字母")
}

func TestFieldErrorUsesJSONName(t *testing.T) {
	require.NoError(t, Register())

	err := binding.Validator.ValidateStruct(&dto.CreateVideoRequest{Title: "x", VideoURL: "https://cdn/v.mp4"})
	field, msg, ok := FieldError(err)
	require.True(t, ok)
	assert.Equal(t, "title", field)
	assert.Contains(t, msg, "2")

	_, _, ok = FieldError(assert.AnError)
	assert.False(t, ok)
}
