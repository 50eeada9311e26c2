package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader stores job-application resumes. When the bucket is not
// configured the uploader stays disabled and applications go through
// without an attachment URL.
type S3Uploader struct {
	Client *s3.Client
	Bucket string
}

func NewS3Uploader(ctx context.Context) (*S3Uploader, error) {
	bucket := os.Getenv("RESUME_S3_BUCKET")
	if bucket == "" {
		return &S3Uploader{Client: nil, Bucket: ""}, nil
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		region = "eu-central-1"
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Uploader{Client: s3.NewFromConfig(cfg), Bucket: bucket}, nil
}

func (u *S3Uploader) Enabled() bool { return u != nil && u.Client != nil && u.Bucket != "" }

// UploadResume stores one resume under resumes/<job>/<timestamp>-<filename>
// and returns its s3:// URL.
func (u *S3Uploader) UploadResume(ctx context.Context, jobSlug, filename, contentType string, body io.Reader) (string, error) {
	if !u.Enabled() {
		return "", fmt.Errorf("s3 uploader not configured")
	}
	key := fmt.Sprintf("resumes/%s/%s-%s",
		jobSlug,
		time.Now().UTC().Format("20060102T150405Z"),
		path.Base(filename),
	)
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.Bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", u.Bucket, key), nil
}
