package blobstore

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

// CloudinaryStore uploads audio and images to Cloudinary. The blob path minus
// its extension becomes the public id, so the folder layout is kept.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore connects with a CLOUDINARY_URL style url. Every upload
// goes under folder when it is not empty.
func NewCloudinaryStore(cloudinaryURL, folder string) (*CloudinaryStore, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("cloudinary url is empty")
	}
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cloudinary")
	}
	return &CloudinaryStore{client: client, folder: folder}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, blobPath string, body io.Reader, contentType string) (string, error) {
	overwrite := true
	publicID := strings.TrimSuffix(blobPath, path.Ext(blobPath))
	result, err := s.client.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID,
		ResourceType: resourceType(contentType),
		Overwrite:    &overwrite,
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload %s to cloudinary", blobPath)
	}
	if result.Error.Message != "" {
		return "", errors.Errorf("upload %s to cloudinary: %s", blobPath, result.Error.Message)
	}
	return result.SecureURL, nil
}

// resourceType maps a MIME type to a Cloudinary resource type. Cloudinary
// files audio under "video".
func resourceType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "audio/"), strings.HasPrefix(contentType, "video/"):
		return "video"
	case contentType == "":
		return "auto"
	default:
		return "raw"
	}
}
