package util

import (
	"net/url"
	"strconv"
	"strings"
)

// ImageTransformOptions controls the on-the-fly render variant of a stored
// asset URL.
type ImageTransformOptions struct {
	Width   int
	Quality int // defaults to 90
}

// storageHost is the host pattern of URLs that support the render endpoint.
// Legacy assets still live on the old storage host, so the rewrite keeps
// supporting it alongside whatever serves new uploads.
const storageHost = "supabase.co"

// TransformedImageURL rewrites a stored asset URL into its resized variant.
// It is a pure string transformation: no network calls, and any URL that
// does not match the storage host pattern comes back unchanged.
func TransformedImageURL(rawURL string, opts ImageTransformOptions) string {
	if rawURL == "" || !strings.Contains(rawURL, storageHost) {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parts := strings.Split(u.Path, "/")
	objectIndex := -1
	for i, p := range parts {
		if p == "object" {
			objectIndex = i
			break
		}
	}
	if objectIndex == -1 {
		// Not a standard object URL, or already a render URL.
		return rawURL
	}

	rewritten := make([]string, 0, len(parts)+1)
	rewritten = append(rewritten, parts[:objectIndex]...)
	rewritten = append(rewritten, "render", "image")
	rewritten = append(rewritten, parts[objectIndex+1:]...)
	u.Path = strings.Join(rewritten, "/")

	quality := opts.Quality
	if quality == 0 {
		quality = 90
	}

	q := url.Values{}
	q.Set("width", strconv.Itoa(opts.Width))
	q.Set("quality", strconv.Itoa(quality))
	q.Set("format", "auto") // serve WebP/AVIF when the client supports it
	q.Set("resize", "cover")
	u.RawQuery = q.Encode()

	return u.String()
}
