package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTTPMethod(t *testing.T) {
	for _, m := range []string{"get", "POST", "patch", "trace"} {
		assert.True(t, IsHTTPMethod(m), m)
	}
	for _, k := range []string{"parameters", "summary", "servers", "$ref", ""} {
		assert.False(t, IsHTTPMethod(k), k)
	}
}

func TestIsReadWriteMethod(t *testing.T) {
	assert.True(t, IsReadMethod("GET"))
	assert.False(t, IsReadMethod("post"))

	assert.True(t, IsWriteMethod("post"))
	assert.True(t, IsWriteMethod("PUT"))
	assert.True(t, IsWriteMethod("patch"))
	assert.False(t, IsWriteMethod("delete"))
	assert.False(t, IsWriteMethod("get"))
}
