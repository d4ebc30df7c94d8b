package storage

import (
	"context"
	"regexp"
)

// Store is the object-storage collaborator for binary artifacts (title
// photos, proposal PDFs, grand designs). The services only handle keys and
// public URLs; bytes never flow through the engine.
type Store interface {
	// Put uploads a local file under the given key and returns its public URL.
	Put(ctx context.Context, localPath, key string) (string, error)
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// PublicURL returns the public URL serving the given key.
	PublicURL(key string) string
}

var fileKeyPattern = regexp.MustCompile(`/file/(.*)$`)

// KeyFromURL extracts the storage key from a public file URL, or returns ""
// if the URL does not point at the file endpoint.
func KeyFromURL(url string) string {
	match := fileKeyPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}
