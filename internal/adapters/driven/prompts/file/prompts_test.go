package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() map[string]string {
	return map[string]string{
		"classify": "classify these:\n%s",
	}
}

func TestPromptStore_Load(t *testing.T) {
	t.Run("first load creates the directory and default files", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "prompts")
		store, err := NewPromptStore(dir, testDefaults())
		require.NoError(t, err)

		prompt, err := store.Load("classify")

		require.NoError(t, err)
		assert.Equal(t, "classify these:\n%s", prompt)
		assert.FileExists(t, filepath.Join(dir, "classify.txt"))
	})

	t.Run("an existing file wins over the default", func(t *testing.T) {
		dir := t.TempDir()
		custom := "my custom template %s"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "classify.txt"), []byte(custom+"\n"), 0o600))

		store, err := NewPromptStore(dir, testDefaults())
		require.NoError(t, err)

		prompt, err := store.Load("classify")

		require.NoError(t, err)
		assert.Equal(t, custom, prompt)
	})

	t.Run("unknown prompt with no default is an error", func(t *testing.T) {
		store, err := NewPromptStore(t.TempDir(), testDefaults())
		require.NoError(t, err)

		_, err = store.Load("no_such_prompt")

		assert.Error(t, err)
	})

	t.Run("missing file falls back to the default", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewPromptStore(dir, testDefaults())
		require.NoError(t, err)

		_, err = store.Load("classify")
		require.NoError(t, err)

		// Simulate the user deleting the file after initialisation.
		require.NoError(t, os.Remove(filepath.Join(dir, "classify.txt")))
		store.Reload()

		prompt, err := store.Load("classify")

		require.NoError(t, err)
		assert.Equal(t, "classify these:\n%s", prompt)
	})
}

func TestPromptStore_Reload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir, testDefaults())
	require.NoError(t, err)

	first, err := store.Load("classify")
	require.NoError(t, err)
	assert.Equal(t, "classify these:\n%s", first)

	// Edit the file on disk; the cached value masks it until Reload.
	edited := "edited template %s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "classify.txt"), []byte(edited), 0o600))

	cached, err := store.Load("classify")
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	store.Reload()

	fresh, err := store.Load("classify")
	require.NoError(t, err)
	assert.Equal(t, edited, fresh)
}

func TestPromptStore_Dir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir, testDefaults())
	require.NoError(t, err)

	assert.Equal(t, dir, store.Dir())
}
