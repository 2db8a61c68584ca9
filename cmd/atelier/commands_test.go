package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/storage"
)

// setupDataDir points ATELIER_DIR at a fresh initialized directory.
func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ATELIER_DIR", dir)
	_, err := storage.Init(dir)
	require.NoError(t, err)
	return dir
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ATELIER_DIR", dir)

	require.NoError(t, runInit(initCmd, nil))
	info, err := os.Stat(filepath.Join(dir, ".atelier"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second init fails
	assert.Error(t, runInit(initCmd, nil))
}

func TestAddRemoveFlow(t *testing.T) {
	setupDataDir(t)

	addTitle = "Sunrise No. 7"
	addArtist = "M. Oda"
	addImageRef = ""
	addMedium = ""
	require.NoError(t, runAdd(addCmd, []string{"sunrise-07"}))

	// The artwork survives a fresh open: it was persisted
	a, err := openApp()
	require.NoError(t, err)
	art, ok := a.store.GetArtwork("sunrise-07")
	require.True(t, ok)
	assert.Equal(t, "Sunrise No. 7", art.Title)

	require.NoError(t, runRemove(removeCmd, []string{"sunrise-07"}))
	assert.Error(t, runRemove(removeCmd, []string{"sunrise-07"}))
}

func TestAddRejectsBlankID(t *testing.T) {
	setupDataDir(t)
	assert.Error(t, runAdd(addCmd, []string{"  "}))
}

func TestLikeFlow(t *testing.T) {
	setupDataDir(t)

	addTitle = ""
	addArtist = ""
	addImageRef = ""
	addMedium = ""
	require.NoError(t, runAdd(addCmd, []string{"a1"}))

	require.NoError(t, runLike(likeCmd, []string{"a1"}))
	a, err := openApp()
	require.NoError(t, err)
	assert.True(t, a.store.HasLiked("a1"))

	require.NoError(t, runLike(likeCmd, []string{"a1"}))
	a, err = openApp()
	require.NoError(t, err)
	assert.False(t, a.store.HasLiked("a1"))

	assert.Error(t, runLike(likeCmd, []string{"ghost"}))
}

func TestCompleteFlow(t *testing.T) {
	dir := setupDataDir(t)

	// Predefined requests come from the user config
	content := "requests:\n  - id: r1\n    prompt: paint a storm\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".atelierconfig.yaml"), []byte(content), 0644))

	require.NoError(t, runComplete(completeCmd, []string{"r1"}))

	a, err := openApp()
	require.NoError(t, err)
	assert.Empty(t, a.store.ActiveRequests())
	reqs := a.store.AllRequests()
	require.Len(t, reqs, 1)
	assert.True(t, reqs[0].IsCompleted)

	assert.Error(t, runComplete(completeCmd, []string{"ghost"}))
}

func TestLoadCommand(t *testing.T) {
	dir := setupDataDir(t)

	exportPath := filepath.Join(dir, "backup.json")
	content := `{"artworks": [{"id": "a1", "title": "Sunrise"}]}`
	require.NoError(t, os.WriteFile(exportPath, []byte(content), 0644))

	loadArtworksFrom = exportPath
	loadRequestsFrom = ""
	require.NoError(t, runLoad(loadCmd, nil))

	a, err := openApp()
	require.NoError(t, err)
	art, ok := a.store.GetArtwork("a1")
	require.True(t, ok)
	assert.Equal(t, "Sunrise", art.Title)

	// No flags at all is an error
	loadArtworksFrom = ""
	loadRequestsFrom = ""
	assert.Error(t, runLoad(loadCmd, nil))
}
