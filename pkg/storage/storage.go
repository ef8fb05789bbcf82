// Package storage puts uploaded media into a bucket and returns public URLs.
// Two backends exist: Supabase Storage over REST and any S3-compatible service.
package storage

import (
	"context"
	"errors"
	"strings"
)

var ErrNotConfigured = errors.New("storage: backend not configured")

// ObjectStore is the bucket abstraction the upload flow depends on.
type ObjectStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) error
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
	// PathFromURL reverses PublicURL. ok is false for foreign URLs.
	PathFromURL(url string) (path string, ok bool)
	Ping(ctx context.Context) error
}

// CleanFolder reduces a caller supplied folder name to a single safe path segment.
func CleanFolder(folder, fallback string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	var b strings.Builder
	for _, r := range folder {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}

func trimPrefixPath(url, prefix string) (string, bool) {
	if prefix == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	path := strings.TrimPrefix(url, prefix)
	if path == "" || strings.Contains(path, "..") {
		return "", false
	}
	return path, true
}
