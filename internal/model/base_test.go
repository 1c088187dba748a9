package model_test

import (
	"testing"

	"github.com/mdouchement/pinpost/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := model.NewID()

	assert.Len(t, id, 24)
	assert.True(t, model.ValidID(id))
	assert.NotEqual(t, id, model.NewID())
}

func TestValidID(t *testing.T) {
	assert.True(t, model.ValidID("65f1c0ffee0ddba11ca7c0de"))

	assert.False(t, model.ValidID(""))
	assert.False(t, model.ValidID("65f1c0ffee0ddba11ca7c0d"))
	assert.False(t, model.ValidID("65f1c0ffee0ddba11ca7c0de0"))
	assert.False(t, model.ValidID("65F1C0FFEE0DDBA11CA7C0DE"))
	assert.False(t, model.ValidID("zzf1c0ffee0ddba11ca7c0de"))
	assert.False(t, model.ValidID("not-an-id"))
}
