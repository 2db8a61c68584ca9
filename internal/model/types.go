// Package model defines the core data structures for atelier.
package model

// Artwork represents a single piece in the gallery collection.
// Records are value types: "mutation" always means replacing the stored
// value with a modified copy, never writing through a shared pointer.
type Artwork struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Artist   string `json:"artist,omitempty" yaml:"artist,omitempty"`
	ImageRef string `json:"image_ref,omitempty" yaml:"image_ref,omitempty"`
	Medium   string `json:"medium,omitempty" yaml:"medium,omitempty"`
	IsLiked  bool   `json:"is_liked" yaml:"is_liked"`
}

// WithLiked returns a copy of the artwork with the liked flag set to v.
func (a Artwork) WithLiked(v bool) Artwork {
	a.IsLiked = v
	return a
}

// Request represents a challenge (commission) request presented to the user.
type Request struct {
	ID          string `json:"id" yaml:"id"`
	Prompt      string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Reward      int    `json:"reward,omitempty" yaml:"reward,omitempty"`
	IsCompleted bool   `json:"is_completed" yaml:"is_completed"`
}

// Completed returns a copy of the request marked completed.
// Completion is one-way: nothing in the system resets the flag.
func (r Request) Completed() Request {
	r.IsCompleted = true
	return r
}
