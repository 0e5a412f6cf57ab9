package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformedImageURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		opts ImageTransformOptions
		want string
	}{
		{
			name: "Storage URL rewritten to render endpoint",
			url:  "https://x.supabase.co/storage/v1/object/public/restaurant-assets/menu/a.jpg",
			opts: ImageTransformOptions{Width: 400},
			want: "https://x.supabase.co/storage/v1/render/image/public/restaurant-assets/menu/a.jpg?format=auto&quality=90&resize=cover&width=400",
		},
		{
			name: "Explicit quality",
			url:  "https://x.supabase.co/storage/v1/object/public/restaurant-assets/menu/a.jpg",
			opts: ImageTransformOptions{Width: 800, Quality: 60},
			want: "https://x.supabase.co/storage/v1/render/image/public/restaurant-assets/menu/a.jpg?format=auto&quality=60&resize=cover&width=800",
		},
		{
			name: "Foreign host returned unchanged",
			url:  "https://other-host/img.png",
			opts: ImageTransformOptions{Width: 400},
			want: "https://other-host/img.png",
		},
		{
			name: "Empty URL returned unchanged",
			url:  "",
			opts: ImageTransformOptions{Width: 400},
			want: "",
		},
		{
			name: "URL without object segment returned unchanged",
			url:  "https://x.supabase.co/storage/v1/render/image/public/restaurant-assets/menu/a.jpg",
			opts: ImageTransformOptions{Width: 400},
			want: "https://x.supabase.co/storage/v1/render/image/public/restaurant-assets/menu/a.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformedImageURL(tt.url, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformedImageURL_ContainsWidthParam(t *testing.T) {
	got := TransformedImageURL("https://x.supabase.co/storage/v1/object/public/bucket/a.jpg", ImageTransformOptions{Width: 400})
	assert.Contains(t, got, "width=400")
	assert.Contains(t, got, "/render/image/")
}
