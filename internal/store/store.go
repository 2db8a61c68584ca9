// Package store holds the authoritative in-memory collections of artworks
// and challenge requests and notifies dependent subsystems of changes.
package store

import (
	"github.com/rs/zerolog"

	"github.com/atelierhq/atelier/internal/model"
)

// CountSink receives derived scalar counts after every mutation.
// Implementations are write-only targets; the store never reads them back.
type CountSink interface {
	SetArtworkCount(n int)
	SetActiveRequestCount(n int)
}

// NopSink discards all counts.
type NopSink struct{}

func (NopSink) SetArtworkCount(int)       {}
func (NopSink) SetActiveRequestCount(int) {}

// Store owns the artwork and request collections. Callers receive copies,
// never handles into the live slices.
//
// Store is not safe for concurrent use; all operations are expected to run
// on a single logical thread of control.
type Store struct {
	artworks []model.Artwork
	requests []model.Request

	// Materialized view of requests with IsCompleted == false, rebuilt
	// lazily on the next read after any mutation.
	active      []model.Request
	activeDirty bool

	sink      CountSink
	observers []func()
	log       zerolog.Logger
}

// New creates an empty store pushing counts into sink.
// A nil sink is replaced with NopSink.
func New(sink CountSink, log zerolog.Logger) *Store {
	if sink == nil {
		sink = NopSink{}
	}
	return &Store{
		sink:        sink,
		activeDirty: true,
		log:         log,
	}
}

// Subscribe registers fn to be called synchronously after every runtime
// mutation, in registration order. Startup loading does not notify.
func (s *Store) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

// LoadPredefined installs the predefined request list supplied by
// configuration. It must run before any other operation. The cache and
// count sinks are updated but observers are not notified: this is
// initialization, not a runtime mutation.
func (s *Store) LoadPredefined(requests []model.Request) {
	if len(requests) == 0 {
		return
	}
	s.requests = append(s.requests[:0:0], requests...)
	s.afterMutation(false)
}

// AddArtwork appends the artwork to the collection. No duplicate-id check
// is performed; lookups resolve duplicates to the first match in insertion
// order.
func (s *Store) AddArtwork(a model.Artwork) {
	s.artworks = append(s.artworks, a)
	s.afterMutation(true)
}

// RemoveArtwork removes the first artwork with the given id and reports
// whether a removal occurred. Nothing changes when the id is absent.
func (s *Store) RemoveArtwork(id string) bool {
	for i, a := range s.artworks {
		if a.ID == id {
			s.artworks = append(s.artworks[:i], s.artworks[i+1:]...)
			s.afterMutation(true)
			return true
		}
	}
	return false
}

// GetArtwork returns the first artwork with the given id.
func (s *Store) GetArtwork(id string) (model.Artwork, bool) {
	for _, a := range s.artworks {
		if a.ID == id {
			return a, true
		}
	}
	return model.Artwork{}, false
}

// AllArtworks returns a copy of the artwork collection.
func (s *Store) AllArtworks() []model.Artwork {
	return append([]model.Artwork(nil), s.artworks...)
}

// AllRequests returns a copy of the request collection.
func (s *Store) AllRequests() []model.Request {
	return append([]model.Request(nil), s.requests...)
}

// ToggleLike flips the liked flag on the artwork with the given id by
// replacing the stored record with a modified copy. An unknown id is a
// recoverable no-op: it is logged for diagnostics but not surfaced to the
// caller.
func (s *Store) ToggleLike(id string) {
	for i, a := range s.artworks {
		if a.ID == id {
			s.artworks[i] = a.WithLiked(!a.IsLiked)
			s.afterMutation(true)
			return
		}
	}
	s.log.Warn().Str("artwork_id", id).Msg("toggle like: artwork not found")
}

// HasLiked returns the liked flag for the artwork with the given id.
// A missing id reads as false; callers cannot distinguish "not found"
// from "found and not liked".
func (s *Store) HasLiked(id string) bool {
	a, ok := s.GetArtwork(id)
	return ok && a.IsLiked
}

// CompleteRequest marks the first request with the given id completed and
// reports whether it was found. Completing an already-completed request
// still counts as found and runs the mutation pipeline, but the active
// count is unchanged.
func (s *Store) CompleteRequest(id string) bool {
	for i, r := range s.requests {
		if r.ID == id {
			s.requests[i] = r.Completed()
			s.afterMutation(true)
			return true
		}
	}
	return false
}

// ActiveRequests returns a copy of the requests not yet completed.
// The underlying view is recomputed at most once per mutation batch:
// mutations only mark it dirty, and the filter runs on the next read.
func (s *Store) ActiveRequests() []model.Request {
	s.rebuildActive()
	return append([]model.Request(nil), s.active...)
}

// ActiveRequestCount returns the number of incomplete requests.
func (s *Store) ActiveRequestCount() int {
	s.rebuildActive()
	return len(s.active)
}

// ArtworkCount returns the number of stored artworks.
func (s *Store) ArtworkCount() int {
	return len(s.artworks)
}

// SetAllArtworks atomically replaces the artwork collection.
// A nil slice installs an empty collection.
func (s *Store) SetAllArtworks(artworks []model.Artwork) {
	s.artworks = append(artworks[:0:0], artworks...)
	s.afterMutation(true)
}

// SetAllRequests atomically replaces the request collection.
// A nil slice installs an empty collection.
func (s *Store) SetAllRequests(requests []model.Request) {
	s.requests = append(requests[:0:0], requests...)
	s.afterMutation(true)
}

// countActive counts incomplete requests directly, without touching the
// materialized view. The mutation pipeline needs the count immediately but
// must leave the view itself lazy.
func (s *Store) countActive() int {
	n := 0
	for _, r := range s.requests {
		if !r.IsCompleted {
			n++
		}
	}
	return n
}

// rebuildActive refilters the active view if a mutation marked it dirty.
func (s *Store) rebuildActive() {
	if !s.activeDirty {
		return
	}
	s.active = s.active[:0]
	for _, r := range s.requests {
		if !r.IsCompleted {
			s.active = append(s.active, r)
		}
	}
	s.activeDirty = false
}

// afterMutation runs the mutation pipeline: invalidate the active view,
// push derived counts into the sinks, then notify observers. Observers are
// skipped when notify is false (startup load).
func (s *Store) afterMutation(notify bool) {
	s.activeDirty = true
	s.sink.SetArtworkCount(len(s.artworks))
	s.sink.SetActiveRequestCount(s.countActive())
	if !notify {
		return
	}
	for _, fn := range s.observers {
		fn()
	}
}
