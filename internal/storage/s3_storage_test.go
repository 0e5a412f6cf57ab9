package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	t.Run("with base URL", func(t *testing.T) {
		s := &S3Storage{bucket: "restaurant-assets", baseURL: "https://cdn.example.com"}

		key, ok := s.KeyFromURL("https://cdn.example.com/menu/abc.jpg")
		assert.True(t, ok)
		assert.Equal(t, "menu/abc.jpg", key)
	})

	t.Run("virtual hosted style", func(t *testing.T) {
		s := &S3Storage{bucket: "restaurant-assets"}

		key, ok := s.KeyFromURL("https://restaurant-assets.s3.ap-northeast-2.amazonaws.com/gallery/x.png")
		assert.True(t, ok)
		assert.Equal(t, "gallery/x.png", key)
	})

	t.Run("path style", func(t *testing.T) {
		s := &S3Storage{bucket: "restaurant-assets"}

		key, ok := s.KeyFromURL("https://s3.amazonaws.com/restaurant-assets/chefs/c.webp")
		assert.True(t, ok)
		assert.Equal(t, "chefs/c.webp", key)
	})

	t.Run("foreign URL", func(t *testing.T) {
		s := &S3Storage{bucket: "restaurant-assets", baseURL: "https://cdn.example.com"}

		_, ok := s.KeyFromURL("https://images.unsplash.com/photo-1234")
		assert.False(t, ok)
	})

	t.Run("empty URL", func(t *testing.T) {
		s := &S3Storage{bucket: "restaurant-assets"}

		_, ok := s.KeyFromURL("")
		assert.False(t, ok)
	})
}
