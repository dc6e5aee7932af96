package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Errors returned by resume validation. Upload transport failures are
// reported as-is (wrapped) so callers can distinguish cheap rejections from
// storage-side failures.
var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("file type is not allowed")
)

// allowedExtensions is the fixed resume allow-list: documents plus the common
// image formats the old system accepted.
var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".txt":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// File describes one binary destined for the object store.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Uploader streams a file to the object store and returns a durable URL.
// Implementations must bound the wait themselves; a hung storage service must
// not hold a request handler indefinitely.
type Uploader interface {
	Upload(ctx context.Context, file *File) (string, error)
}

// ValidateResume performs the cheap pre-flight checks (size cap, extension
// allow-list) before any network I/O is paid for.
func ValidateResume(file *File, maxSize int64) error {
	if file.Size > maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, file.Size, maxSize)
	}
	ext := strings.ToLower(filepath.Ext(file.Name))
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	return nil
}
