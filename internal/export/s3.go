package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/chrisdamba/foodadmin/internal/models"
)

// S3Bucket uploads exports to S3 or an S3-compatible store.
type S3Bucket struct {
	client *s3.Client
}

func NewS3Bucket(ctx context.Context, cs models.CloudStorageConfig) (*S3Bucket, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cs.Region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if cs.Endpoint != "" {
			o.BaseEndpoint = aws.String(cs.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Bucket{client: client}, nil
}

func (b *S3Bucket) NewWriter(ctx context.Context, obj Object) (CloudWriter, error) {
	if obj.Bucket == "" || obj.Key == "" {
		return nil, errors.New("s3 upload needs a bucket and a key")
	}
	return &s3Upload{ctx: ctx, client: b.client, obj: obj}, nil
}

// s3Upload holds the whole export in memory and puts it in one request on
// Close. Exports are a single screen of rows.
type s3Upload struct {
	ctx    context.Context
	client *s3.Client
	obj    Object
	buf    bytes.Buffer
	done   bool
}

func (u *s3Upload) Write(p []byte) (int, error) {
	if u.done {
		return 0, fmt.Errorf("write to s3://%s/%s after close", u.obj.Bucket, u.obj.Key)
	}
	return u.buf.Write(p)
}

func (u *s3Upload) Close() error {
	if u.done {
		return nil
	}
	u.done = true

	in := &s3.PutObjectInput{
		Bucket:        aws.String(u.obj.Bucket),
		Key:           aws.String(u.obj.Key),
		Body:          bytes.NewReader(u.buf.Bytes()),
		ContentLength: aws.Int64(int64(u.buf.Len())),
		Metadata:      u.obj.Metadata,
	}
	if u.obj.ContentType != "" {
		in.ContentType = aws.String(u.obj.ContentType)
	}
	if _, err := u.client.PutObject(u.ctx, in); err != nil {
		return fmt.Errorf("upload s3://%s/%s: %w", u.obj.Bucket, u.obj.Key, err)
	}
	return nil
}
