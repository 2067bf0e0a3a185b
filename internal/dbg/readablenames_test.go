package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type key struct{ x, y float64 }

	a := Name(key{1, 2})
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Name(key{1, 2}), "same value should get the same name")

	var nilPointer *key
	assert.Equal(t, "Ø", Name(nilPointer))
	assert.Equal(t, "Ø", Name(nil))
}
