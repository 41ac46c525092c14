package pyimports

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/codescout/pyimports/pkg/textutil"
)

var (
	// ErrEmptyPath indicates a path argument was empty.
	ErrEmptyPath = errors.New("path is empty")
	// ErrPathContainsNUL indicates the path contains a NUL byte.
	ErrPathContainsNUL = errors.New("path contains NUL byte")
	// ErrNotText indicates file content that cannot be decoded as text.
	ErrNotText = errors.New("file is not decodable as text")
)

// ReadSource reads path and returns its full contents as text. Content
// with null bytes in the sniff window or invalid UTF-8 is a decode
// failure. Errors here are fatal to a scan: the caller is expected to
// have filtered its inputs to existing regular files beforehand.
func ReadSource(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}

	if strings.ContainsRune(path, '\x00') {
		return "", fmt.Errorf("%w: %q", ErrPathContainsNUL, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if textutil.IsBinary(data) || !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrNotText, path)
	}

	return string(data), nil
}
