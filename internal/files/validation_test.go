package files

import (
	"os"
	"path/filepath"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestIsJsonType(t *testing.T) {
	assert := assert2.New(t)

	assert.True(IsJsonType([]byte(`{"openapi": "3.0.0"}`)))
	assert.True(IsJsonType([]byte(`[1, 2]`)))
	assert.False(IsJsonType([]byte(`openapi: 3.0.0`)))
	assert.False(IsJsonType([]byte(`{"broken": `)))
}

func TestIsYamlType(t *testing.T) {
	assert := assert2.New(t)

	assert.True(IsYamlType([]byte("openapi: 3.0.0\npaths: {}\n")))
	assert.True(IsYamlType([]byte(`{"openapi": "3.0.0"}`)))
	assert.False(IsYamlType([]byte("just a string")))
	assert.False(IsYamlType([]byte("key: [unclosed")))
}

func TestIsRegularFileAndDir(t *testing.T) {
	assert := assert2.New(t)

	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "page.mdx")
	assert.NoError(os.WriteFile(filePath, []byte("# page"), 0644))

	assert.True(IsRegularFile(filePath))
	assert.False(IsRegularFile(tempDir))
	assert.False(IsRegularFile(filepath.Join(tempDir, "missing.mdx")))

	assert.True(IsDir(tempDir))
	assert.False(IsDir(filePath))
	assert.False(IsDir(filepath.Join(tempDir, "missing")))
}
