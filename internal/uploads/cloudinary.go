package uploads

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"hr-backend/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader implements Uploader against the Cloudinary upload API.
type CloudinaryUploader struct {
	cld     *cloudinary.Cloudinary
	folder  string
	timeout time.Duration
}

// NewCloudinaryUploader creates a Cloudinary-backed uploader from config.
func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &CloudinaryUploader{
		cld:     cld,
		folder:  cfg.Folder,
		timeout: cfg.UploadTimeout,
	}, nil
}

var _ Uploader = (*CloudinaryUploader)(nil)

// Upload streams the file under a collision-resistant public ID and returns
// the durable URL. The wait is bounded by the configured timeout; on timeout
// or any upload error the caller must fail the whole request.
func (u *CloudinaryUploader) Upload(ctx context.Context, file *File) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	publicID := resumeKey()
	resp, err := u.cld.Upload.Upload(ctx, file.Content, uploader.UploadParams{
		Folder:       u.folder,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		log.Printf("Resume upload failed for key %s: %v", publicID, err)
		return "", fmt.Errorf("resume upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		log.Printf("Resume upload rejected for key %s: %s", publicID, resp.Error.Message)
		return "", fmt.Errorf("resume upload failed: %s", resp.Error.Message)
	}

	log.Printf("Resume uploaded successfully: %s", resp.SecureURL)
	return resp.SecureURL, nil
}

// resumeKey builds a timestamped key with a random suffix so concurrent
// uploads in the same millisecond cannot collide.
func resumeKey() string {
	return fmt.Sprintf("resume-%d-%d", time.Now().UnixMilli(), rand.Int64N(1_000_000_000))
}
