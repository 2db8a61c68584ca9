package codec

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/model"
)

func newTestCodec() Codec {
	return New(zerolog.Nop())
}

func TestExportWrapperShape(t *testing.T) {
	t.Run("artworks export is a single-field object", func(t *testing.T) {
		text := newTestCodec().ExportArtworks([]model.Artwork{{ID: "a1"}})

		var top map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(text), &top))
		require.Len(t, top, 1)
		require.Contains(t, top, "artworks")

		var inner []model.Artwork
		require.NoError(t, json.Unmarshal(top["artworks"], &inner))
		assert.Len(t, inner, 1)
	})

	t.Run("requests export is a single-field object", func(t *testing.T) {
		text := newTestCodec().ExportRequests(nil)

		var top map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(text), &top))
		require.Len(t, top, 1)
		require.Contains(t, top, "requests")
	})

	t.Run("empty collection exports an empty array, not null", func(t *testing.T) {
		text := newTestCodec().ExportArtworks(nil)
		assert.Contains(t, text, `"artworks": []`)
	})
}

func TestRoundTrip(t *testing.T) {
	c := newTestCodec()

	t.Run("artworks survive export/import", func(t *testing.T) {
		in := []model.Artwork{
			{ID: "a1", Title: "Sunrise No. 7", Artist: "M. Oda", Medium: "oil", IsLiked: true},
			{ID: "a2", ImageRef: "img/2.png"},
			{ID: "a2"}, // duplicate ids must survive too
		}
		out := c.ImportArtworks(c.ExportArtworks(in))
		assert.Equal(t, in, out)
	})

	t.Run("requests survive export/import", func(t *testing.T) {
		in := []model.Request{
			{ID: "r1", Prompt: "paint a storm", Reward: 120},
			{ID: "r2", IsCompleted: true},
		}
		out := c.ImportRequests(c.ExportRequests(in))
		assert.Equal(t, in, out)
	})

	t.Run("empty collection round-trips to empty", func(t *testing.T) {
		assert.Empty(t, c.ImportArtworks(c.ExportArtworks(nil)))
		assert.Empty(t, c.ImportRequests(c.ExportRequests([]model.Request{})))
	})
}

func TestImportDegradation(t *testing.T) {
	t.Run("blank text yields an empty collection", func(t *testing.T) {
		c := newTestCodec()
		assert.Empty(t, c.ImportArtworks(""))
		assert.Empty(t, c.ImportArtworks("   \n\t"))
		assert.Empty(t, c.ImportRequests(""))
	})

	t.Run("malformed text is logged and yields an empty collection", func(t *testing.T) {
		var buf bytes.Buffer
		c := New(zerolog.New(&buf))

		assert.Empty(t, c.ImportArtworks("not json"))
		assert.Empty(t, c.ImportArtworks(`{"artworks": "wrong type"}`))
		assert.Empty(t, c.ImportRequests(`[{"id":"r1"}]`), "bare arrays are not the persisted format")
		assert.NotEmpty(t, buf.String())
	})

	t.Run("missing or null wrapper field yields an empty collection", func(t *testing.T) {
		c := newTestCodec()
		assert.Empty(t, c.ImportArtworks(`{}`))
		assert.Empty(t, c.ImportArtworks(`{"artworks": null}`))
		assert.Empty(t, c.ImportRequests(`{"requests": null}`))
	})
}

func TestFileIO(t *testing.T) {
	t.Run("save then load returns the same text", func(t *testing.T) {
		c := newTestCodec()
		path := filepath.Join(t.TempDir(), "artworks.json")

		c.SaveToFile(`{"artworks": []}`, path)
		text, ok := c.LoadFromFile(path)
		require.True(t, ok)
		assert.Equal(t, `{"artworks": []}`, text)
	})

	t.Run("missing file loads as absent", func(t *testing.T) {
		c := newTestCodec()
		_, ok := c.LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.False(t, ok)
	})

	t.Run("write failure is logged, not raised", func(t *testing.T) {
		var buf bytes.Buffer
		c := New(zerolog.New(&buf))

		// A path under a file cannot be created
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		c.SaveToFile("text", filepath.Join(blocker, "artworks.json"))
		assert.NotEmpty(t, buf.String())
	})
}
