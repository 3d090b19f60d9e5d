package blobstore

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

const (
	DefaultS3Region = "us-west-1"
)

// S3Store uploads blobs to a public-read bucket served behind a CDN. The
// object key is the blob path.
type S3Store struct {
	bucket    string
	cdnPrefix string
	uploader  *s3manager.Uploader
}

func NewS3Store(bucket, region, cdnPrefix string) (*S3Store, error) {
	if region == "" {
		region = DefaultS3Region
	}
	// AWS client session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3Store{
		bucket:    bucket,
		cdnPrefix: strings.TrimSuffix(cdnPrefix, "/") + "/",
		uploader:  s3manager.NewUploader(sess),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		ACL:    aws.String("public-read"),
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.uploader.UploadWithContext(ctx, input); err != nil {
		return "", errors.Wrapf(err, "upload %s to s3", path)
	}
	return s.GetUrlFromKey(path), nil
}

func (s *S3Store) GetUrlFromKey(key string) string {
	return s.cdnPrefix + key
}
