package uploads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hr-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume(t *testing.T) {
	const maxSize = 10 << 20

	tests := []struct {
		name        string
		filename    string
		size        int64
		expectedErr error
	}{
		{name: "pdf accepted", filename: "resume.pdf", size: 2048},
		{name: "docx accepted", filename: "Resume.DOCX", size: 2048},
		{name: "plain text accepted", filename: "notes.txt", size: 100},
		{name: "jpeg accepted", filename: "scan.jpeg", size: 4096},
		{name: "executable rejected", filename: "resume.exe", size: 2048, expectedErr: ErrUnsupportedType},
		{name: "no extension rejected", filename: "resume", size: 2048, expectedErr: ErrUnsupportedType},
		{name: "oversized rejected", filename: "resume.pdf", size: maxSize + 1, expectedErr: ErrFileTooLarge},
		{name: "exactly at limit accepted", filename: "resume.pdf", size: maxSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &File{
				Name:    tt.filename,
				Size:    tt.size,
				Content: strings.NewReader("data"),
			}
			err := ValidateResume(file, maxSize)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCloudinaryUploaderTimeoutBounded(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Hold the request open until the test finishes.
		<-release
	}))
	defer srv.Close()
	defer close(release)

	up, err := NewCloudinaryUploader(config.CloudinaryConfig{
		CloudName:     "demo",
		APIKey:        "key",
		APISecret:     "secret",
		Folder:        "hr/resumes",
		UploadTimeout: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	up.cld.Upload.Config.API.UploadPrefix = srv.URL

	start := time.Now()
	_, err = up.Upload(context.Background(), &File{
		Name:        "resume.pdf",
		ContentType: "application/pdf",
		Size:        4,
		Content:     strings.NewReader("data"),
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 2*time.Second, "upload did not return within the configured bound")
}

func TestResumeKeyUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		key := resumeKey()
		assert.True(t, strings.HasPrefix(key, "resume-"))
		_, dup := seen[key]
		assert.False(t, dup, "key %s generated twice", key)
		seen[key] = struct{}{}
	}
}
