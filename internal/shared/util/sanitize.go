package util

import (
	"errors"
	"path"
	"strings"
)

// CleanObjectKey normalizes a slash-separated object key and rejects traversal patterns.
func CleanObjectKey(key string) (string, error) {
	s := strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	if strings.Contains(s, "..") {
		return "", errors.New("invalid object key")
	}
	s = strings.Trim(path.Clean("/"+s), "/")
	if s == "" {
		return "", errors.New("invalid object key")
	}
	return s, nil
}
