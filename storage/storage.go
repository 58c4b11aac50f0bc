// Package storage keeps uploaded images on disk and hands out reference URLs.
package storage

import (
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
)

// ErrBadPayload means the submitted image is not a decodable data URI
var ErrBadPayload = errors.New("malformed image payload")

// Store writes images under a media directory
type Store struct {
	Dir     string
	BaseURL string
}

// NewStore makes a disk-backed store rooted at dir
func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Store{Dir: dir, BaseURL: baseURL}, nil
}

// SaveDataURI decodes a "data:image/<ext>;base64,<payload>" string, stores
// the bytes under a content-derived name and returns the reference URL
func (s *Store) SaveDataURI(data string) (string, error) {
	if !strings.HasPrefix(data, "data:image/") {
		return "", ErrBadPayload
	}
	meta, payload, found := strings.Cut(data, ";base64,")
	if !found {
		return "", ErrBadPayload
	}
	ext := strings.TrimPrefix(meta, "data:image/")
	if ext == "" || strings.ContainsAny(ext, "/\\.") {
		return "", ErrBadPayload
	}
	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(content) == 0 {
		return "", ErrBadPayload
	}
	return s.SaveBytes(fmt.Sprintf("%x.%s", sha1.Sum(content), ext), content)
}

// SaveBytes stores raw image bytes under the given file name
func (s *Store) SaveBytes(name string, content []byte) (string, error) {
	if err := os.WriteFile(path.Join(s.Dir, name), content, 0600); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + name, nil
}
