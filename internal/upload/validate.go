// Package upload performs the local pre-flight checks on a candidate
// image file before any request is sent to the decode backend.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaxFileBytes is the largest file the decode backend accepts.
const MaxFileBytes = 16 * 1024 * 1024

// DefaultAllowedTypes mirrors the backend's extension allow-list.
var DefaultAllowedTypes = []string{"png", "jpeg", "jpg", "gif", "bmp", "webp"}

// Kind classifies a validation rejection.
type Kind int

const (
	KindInvalidFileType Kind = iota
	KindFileTooLarge
	KindUnreadableFile
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFileType:
		return "invalid file type"
	case KindFileTooLarge:
		return "file too large"
	case KindUnreadableFile:
		return "unreadable file"
	default:
		return "invalid file"
	}
}

// ValidationError is a local rejection; no request has been issued.
type ValidationError struct {
	Kind    Kind
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Validator checks candidate files against the configured limits.
type Validator struct {
	maxBytes int64
	allowed  map[string]bool
}

// NewValidator builds a Validator. Zero maxBytes or an empty type list
// fall back to the fixed defaults.
func NewValidator(maxBytes int64, allowedTypes []string) *Validator {
	if maxBytes <= 0 {
		maxBytes = MaxFileBytes
	}
	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(strings.TrimPrefix(t, "."))] = true
	}
	return &Validator{maxBytes: maxBytes, allowed: allowed}
}

// Check validates the file at path. It stats the file but does not
// read it; the declared type is taken from the extension, the same way
// the backend judges it.
func (v *Validator) Check(path string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !v.allowed[ext] {
		return &ValidationError{
			Kind:    KindInvalidFileType,
			Path:    path,
			Message: fmt.Sprintf("%q is not an accepted image type (allowed: %s)", ext, strings.Join(v.AllowedTypes(), ", ")),
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{
			Kind:    KindUnreadableFile,
			Path:    path,
			Message: err.Error(),
		}
	}
	if info.IsDir() {
		return &ValidationError{
			Kind:    KindUnreadableFile,
			Path:    path,
			Message: "path is a directory",
		}
	}
	if info.Size() > v.maxBytes {
		return &ValidationError{
			Kind:    KindFileTooLarge,
			Path:    path,
			Message: fmt.Sprintf("file is %d bytes, maximum is %d", info.Size(), v.maxBytes),
		}
	}
	return nil
}

// AllowedTypes returns the allow-list in sorted order.
func (v *Validator) AllowedTypes() []string {
	types := make([]string, 0, len(v.allowed))
	for t := range v.allowed {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// AllowedExtensions returns the allow-list with leading dots, in the
// form the filepicker component expects.
func (v *Validator) AllowedExtensions() []string {
	types := v.AllowedTypes()
	exts := make([]string, len(types))
	for i, t := range types {
		exts[i] = "." + t
	}
	return exts
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}
