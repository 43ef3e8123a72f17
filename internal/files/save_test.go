package files

import (
	"os"
	"path/filepath"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestSaveFile(t *testing.T) {
	assert := assert2.New(t)

	t.Run("happy-path", func(t *testing.T) {
		contents := []byte("test file contents")
		filePath := filepath.Join(t.TempDir(), "a", "b", "c", "test.txt")
		err := SaveFile(filePath, contents)
		assert.NoError(err)

		savedContent, err := os.ReadFile(filePath)
		assert.NoError(err)
		assert.Equal(contents, savedContent)
	})

	t.Run("overwrites", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "spec.json")
		assert.NoError(SaveFile(filePath, []byte("a longer first version")))
		assert.NoError(SaveFile(filePath, []byte("second")))

		savedContent, err := os.ReadFile(filePath)
		assert.NoError(err)
		assert.Equal("second", string(savedContent))
	})

	t.Run("parent-is-a-file", func(t *testing.T) {
		tempDir := t.TempDir()
		blocker := filepath.Join(tempDir, "blocker")
		assert.NoError(os.WriteFile(blocker, []byte("x"), 0644))

		err := SaveFile(filepath.Join(blocker, "test.txt"), []byte(""))
		assert.Error(err)
	})

	t.Run("leaves-no-temporary-files", func(t *testing.T) {
		dir := t.TempDir()
		filePath := filepath.Join(dir, "spec.json")
		assert.NoError(SaveFile(filePath, []byte("{}")))
		assert.NoError(SaveFile(filePath, []byte("{}\n")))

		entries, err := os.ReadDir(dir)
		assert.NoError(err)
		assert.Len(entries, 1)
		assert.Equal("spec.json", entries[0].Name())

		info, err := os.Stat(filePath)
		assert.NoError(err)
		assert.Equal(os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("destination-is-a-directory", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "spec.json")
		assert.NoError(os.MkdirAll(filepath.Join(target, "child"), 0o755))

		err := SaveFile(target, []byte("{}"))
		assert.Error(err)

		entries, err := os.ReadDir(dir)
		assert.NoError(err)
		assert.Len(entries, 1)
	})

	t.Run("empty-content", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "empty.txt")
		err := SaveFile(filePath, []byte(""))
		assert.NoError(err)

		info, err := os.Stat(filePath)
		assert.NoError(err)
		assert.Equal(int64(0), info.Size())
	})
}
