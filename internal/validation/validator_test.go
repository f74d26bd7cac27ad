package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectRequest struct {
	ProjectType string `validate:"omitempty,projecttype"`
	Username    string `validate:"notblank"`
}

func TestProjectTypeAndNotBlank(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(projectRequest{ProjectType: "mobile-app", Username: "admin"}))
	assert.NoError(t, v.Struct(projectRequest{ProjectType: "", Username: "admin"}))

	err := v.Struct(projectRequest{ProjectType: "space-program", Username: "  "})
	require.Error(t, err)
	errs := v.ValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "projecttype", errs[0].Tag())
	assert.Equal(t, "notblank", errs[1].Tag())
}

func TestValidationErrorsNil(t *testing.T) {
	v := New()
	assert.Nil(t, v.ValidationErrors(nil))
}
