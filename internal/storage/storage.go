// Package storage keeps uploaded document files in an object store.
package storage

//go:generate mockgen -typed -source=./storage.go -destination=../mocks/mock_blob_store.go -package=mocks BlobStore

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlobStore stores and removes uploaded files.
type BlobStore interface {
	Store(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFileName reduces name to a safe base name.
func SanitizeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}

// ObjectPath builds a unique object path for an upload under prefix.
func ObjectPath(prefix string, now time.Time, fileName string) string {
	return fmt.Sprintf("%s/%s/%s-%s", strings.Trim(prefix, "/"), now.UTC().Format("2006/01"), uuid.NewString(), SanitizeFileName(fileName))
}
