package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLiked(t *testing.T) {
	orig := Artwork{ID: "a1", Title: "Sunrise"}
	liked := orig.WithLiked(true)

	assert.True(t, liked.IsLiked)
	assert.False(t, orig.IsLiked, "original value is unchanged")
	assert.Equal(t, orig.Title, liked.Title)
}

func TestCompleted(t *testing.T) {
	orig := Request{ID: "r1", Prompt: "paint a storm"}
	done := orig.Completed()

	assert.True(t, done.IsCompleted)
	assert.False(t, orig.IsCompleted, "original value is unchanged")
	assert.Equal(t, orig.Prompt, done.Prompt)
}
