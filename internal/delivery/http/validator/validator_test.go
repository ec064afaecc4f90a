package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Count int    `validate:"min=1"`
}

func TestEchoValidator_TagViolation(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Count: 0})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEchoValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Name: "ok", Count: 2}))
}
