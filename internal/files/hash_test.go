package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

type mockFile struct {
	readErr bool
}

func (m *mockFile) Read(p []byte) (n int, err error) {
	if m.readErr {
		return 0, fmt.Errorf("simulated error")
	}
	return len(p), nil
}

func TestGetFileHash(t *testing.T) {
	assert := assert2.New(t)

	t.Run("hash-from-file", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "test.txt")
		assert.NoError(os.WriteFile(filePath, []byte("test"), 0644))

		file, err := os.Open(filePath)
		assert.NoError(err)
		defer func() { _ = file.Close() }()

		assert.Equal("9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", GetFileHash(file))
	})

	t.Run("hash-from-reader", func(t *testing.T) {
		assert.Equal(GetFileHash(strings.NewReader("test")), GetContentHash([]byte("test")))
	})

	t.Run("read-error", func(t *testing.T) {
		assert.Equal("", GetFileHash(&mockFile{readErr: true}))
	})
}
