package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bytebites/backend/internal/models"
	"github.com/bytebites/backend/internal/types"
)

// ObjectPutter is the subset of the S3 client used for exports
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Exporter writes recipe snapshots to a bucket as JSON documents
type S3Exporter struct {
	client ObjectPutter
	bucket string
	prefix string
	now    func() time.Time
}

func NewS3Exporter(client ObjectPutter, bucket, prefix string) *S3Exporter {
	return &S3Exporter{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// Export uploads recipes as a JSON array and returns the object key.
func (e *S3Exporter) Export(ctx context.Context, recipes []*models.Recipe) (string, error) {
	body, err := json.Marshal(types.NewRecipeResponses(recipes))
	if err != nil {
		return "", fmt.Errorf("failed to encode recipes: %w", err)
	}

	key := e.key()
	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(e.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, e.bucket, err)
	}
	return key, nil
}

func (e *S3Exporter) key() string {
	name := fmt.Sprintf("recipes-%s.json", e.now().UTC().Format("20060102T150405Z"))
	if e.prefix == "" {
		return name
	}
	return path.Join(e.prefix, name)
}
