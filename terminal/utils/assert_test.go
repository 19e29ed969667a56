package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true) })
	assert.PanicsWithValue(t, "failed assertion", func() { Assert(false) })
	assert.PanicsWithValue(t, "no progress", func() { Assert(false, "no progress") })
}
