package upload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoFiles         = errors.New("no files uploaded")
	ErrEmptyFile       = errors.New("file is empty")
	ErrTooManyFiles    = errors.New("too many files")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidFilename = errors.New("invalid filename")
)

const (
	DefaultMaxFiles     = 5
	DefaultMaxFileBytes = 5 << 20
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

type Policy struct {
	MaxFiles     int
	MaxFileBytes int64
}

func DefaultPolicy() Policy {
	return Policy{MaxFiles: DefaultMaxFiles, MaxFileBytes: DefaultMaxFileBytes}
}

// Candidate is a file as seen by the gateway: declared name, size, and the MIME type
// sniffed from its content.
type Candidate struct {
	Filename string
	Size     int64
	MIME     string
}

func (p Policy) CheckCount(n int) error {
	if n == 0 {
		return ErrNoFiles
	}
	if n > p.MaxFiles {
		return ErrTooManyFiles
	}
	return nil
}

func (p Policy) CheckFile(c Candidate) error {
	if c.Size <= 0 {
		return fmt.Errorf("%s: %w", c.Filename, ErrEmptyFile)
	}
	if c.Size > p.MaxFileBytes {
		return fmt.Errorf("%s: %w", c.Filename, ErrFileTooLarge)
	}
	if !IsAllowedType(c.MIME) {
		return fmt.Errorf("%s: %w", c.Filename, ErrUnsupportedType)
	}
	return nil
}

func IsAllowedType(mime string) bool {
	base, _, _ := strings.Cut(mime, ";")
	_, ok := allowedTypes[strings.TrimSpace(strings.ToLower(base))]
	return ok
}

// NewFilename generates the stored name. It carries no extension so that it can be used
// directly as the provider object name under the uploads folder.
func NewFilename() string {
	return uuid.NewString()
}

// ObjectID maps a filename to the provider-side id, e.g. uploads/<filename>.
func ObjectID(folder, filename string) (string, error) {
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return "", ErrInvalidFilename
	}
	return folder + "/" + filename, nil
}

// Message is the client-facing text for a rejection.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrTooManyFiles):
		return "Too many files"
	case errors.Is(err, ErrNoFiles):
		return "No files uploaded"
	case errors.Is(err, ErrEmptyFile):
		return "File is empty"
	case errors.Is(err, ErrFileTooLarge):
		return "File too large"
	case errors.Is(err, ErrUnsupportedType):
		return "Only JPEG, PNG, GIF and WebP images are allowed"
	case errors.Is(err, ErrInvalidFilename):
		return "Invalid filename"
	default:
		return "Upload rejected"
	}
}
