package fs

import (
	"errors"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a document cannot be decoded as UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// defaultPerm is used when the target's existing mode cannot be read.
const defaultPerm os.FileMode = 0644

// ReadDocument returns the full text content of the file at path.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// WriteDocument overwrites the file at path with content, keeping its
// existing permission bits. The write is not atomic.
func WriteDocument(path, content string) error {
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), perm)
}

// FileWriter writes documents straight to disk.
type FileWriter struct{}

// Write implements the document sink used by the batch driver.
func (FileWriter) Write(path, content string) error {
	return WriteDocument(path, content)
}
