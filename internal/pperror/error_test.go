package pperror_test

import (
	"net/http"
	"testing"

	"github.com/mdouchement/pinpost/internal/pperror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPPError(t *testing.T) {
	err := pperror.NotFound("some message")

	assert.Equal(t, "some message", err.Error())
	assert.Equal(t, http.StatusNotFound, pperror.StatusCode(err))
}

func TestPPErrorValidation(t *testing.T) {
	err := pperror.Validation(pperror.Fields{
		"postcode": "Invalid US postcode format",
		"name":     "Name is required",
	})

	assert.Equal(t, "invalid fields: name, postcode", err.Error())
	assert.Equal(t, http.StatusBadRequest, pperror.StatusCode(err))
}

func TestStatusCodeDefaultsToInternalError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, pperror.StatusCode(errors.New("boom")))
}
