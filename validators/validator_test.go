package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	BlogID    string `param:"blogId" json:"-" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required"`
	Note      string `json:"note" validate:"omitempty,max=3"`
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{BlogID: "b1", UserEmail: "a@x.com"}))
}

func TestValidate_MissingFieldsUseWireNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{})
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "Missing required fields: blogId, userEmail", he.Message)
}

func TestValidate_InvalidField(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{BlogID: "b1", UserEmail: "a@x.com", Note: "too long"})
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, "Invalid fields: note", he.Message)
}
