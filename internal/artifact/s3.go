// internal/artifact/s3.go
//
// AWS S3 implementation of the Uploader contract.
//
// Credentials come from the default AWS chain (env vars, shared config,
// instance role), which is how every deployment target we use provides
// them.  Only the bucket and region are service configuration.
//
//------------------------------------------------------------------------------

package artifact

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader satisfies Uploader using the AWS SDK v2 client.
type S3Uploader struct {
	client *s3.Client
	bucket string
}

// NewS3Uploader builds a client for bucket in region.  It fails fast when
// the AWS configuration chain cannot be resolved, so a misconfigured
// deployment surfaces at boot rather than on the first submission.
func NewS3Uploader(ctx context.Context, bucket, region string) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// Upload puts body at key with the given content type.
func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}
