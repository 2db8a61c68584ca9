// Package codec converts record collections to and from their persisted
// JSON form and moves that text to and from disk.
//
// Every operation here is fail-soft: a corrupt or missing save file must
// never take the application down, so decode and I/O failures degrade to
// "nothing was loaded" instead of propagating as errors.
package codec

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/atelierhq/atelier/internal/model"
)

// The JSON encoder cannot represent a bare array at the top level of the
// persisted format, so each collection is wrapped in a single-field object.
// The wrapper shape is part of the external format: a compliant decoder
// must accept exactly {"artworks": [...]} and {"requests": [...]}.
type artworkFile struct {
	Artworks []model.Artwork `json:"artworks"`
}

type requestFile struct {
	Requests []model.Request `json:"requests"`
}

// Codec encodes and decodes record collections. Apart from the diagnostic
// logger it carries no state; all methods are pure functions of their input.
type Codec struct {
	log zerolog.Logger
}

// New returns a Codec that logs degradation diagnostics to log.
func New(log zerolog.Logger) Codec {
	return Codec{log: log}
}

// ExportArtworks encodes the collection, wrapped per the persisted format.
// Any collection, including empty, produces valid text.
func (c Codec) ExportArtworks(artworks []model.Artwork) string {
	if artworks == nil {
		artworks = []model.Artwork{}
	}
	return c.export(artworkFile{Artworks: artworks})
}

// ExportRequests encodes the collection, wrapped per the persisted format.
func (c Codec) ExportRequests(requests []model.Request) string {
	if requests == nil {
		requests = []model.Request{}
	}
	return c.export(requestFile{Requests: requests})
}

func (c Codec) export(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Plain structs of strings, ints and bools cannot fail to encode.
		c.log.Error().Err(err).Msg("export: encode failed")
		return ""
	}
	return string(data)
}

// ImportArtworks decodes text produced by ExportArtworks. Empty or blank
// text, malformed JSON, and a missing or null wrapper field all yield an
// empty collection; decode failures are logged, never returned.
func (c Codec) ImportArtworks(text string) []model.Artwork {
	var f artworkFile
	if !c.unwrap(text, &f) || f.Artworks == nil {
		return nil
	}
	return f.Artworks
}

// ImportRequests decodes text produced by ExportRequests, with the same
// fail-soft contract as ImportArtworks.
func (c Codec) ImportRequests(text string) []model.Request {
	var f requestFile
	if !c.unwrap(text, &f) || f.Requests == nil {
		return nil
	}
	return f.Requests
}

func (c Codec) unwrap(text string, v any) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		c.log.Warn().Err(err).Msg("import: malformed persisted text, loading nothing")
		return false
	}
	return true
}

// SaveToFile writes text to path. Best effort: a write failure is logged
// and swallowed.
func (c Codec) SaveToFile(text, path string) {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("save: write failed")
	}
}

// LoadFromFile reads the text at path. The second result is false when the
// file does not exist or the read fails; only genuine read failures are
// logged, a missing file is an expected first-run condition.
func (c Codec) LoadFromFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn().Err(err).Str("path", path).Msg("load: read failed")
		}
		return "", false
	}
	return string(data), true
}
