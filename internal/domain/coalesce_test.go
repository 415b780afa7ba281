package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "LIV", CoalesceStr("  ", "LIV", "BUS"))
	assert.Equal(t, "Calculus I", CoalesceStr(" Calculus I "))
	assert.Empty(t, CoalesceStr("", " "))
	assert.Empty(t, CoalesceStr())
}
