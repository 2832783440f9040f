package lyrics

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/lrctoolbox/internal/logger"
)

// SupportedExtensions lists the file types lyrics are read from and written to,
// in fallback order.
var SupportedExtensions = []string{".lrc", ".txt"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsSupported reports whether path has a supported extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ResolvePath finds the file to read for path. When path is missing or not
// a supported type, the same name with each supported extension is tried.
func ResolvePath(path string) (string, error) {
	_, statErr := os.Stat(path)
	exists := statErr == nil
	if exists && IsSupported(path) {
		return path, nil
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range SupportedExtensions {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			logger.Warn("lyrics file not found, using fallback",
				zap.String("path", path), zap.String("fallback", candidate))
			return candidate, nil
		}
	}

	var err error
	if exists {
		err = &FormatError{Ext: filepath.Ext(path), Supported: SupportedExtensions}
	} else {
		err = fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return "", err
}

// ReadLines resolves path and reads the whole file as lines.
func ReadLines(path string) ([]string, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", resolved, ErrEmptyFile)
	}
	return splitLines(string(data)), nil
}

// LoadFile reads and parses an LRC or text file.
func LoadFile(path string) (*Lyrics, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return LoadLines(lines)
}

// WriteLines writes lines joined by newlines to path, creating parent
// directories. The extension and existence checks run before anything is
// written.
func WriteLines(path string, lines []string, overwrite bool) error {
	if !IsSupported(path) {
		return &FormatError{Ext: filepath.Ext(path), Supported: SupportedExtensions}
	}

	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s: %w (use overwrite to replace it)", path, ErrAlreadyExists)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
}
