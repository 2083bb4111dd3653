package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
	Prefix     string
}

// NewS3Config initializes the S3 client from the export section, using the
// default AWS credential chain.
func NewS3Config(ctx context.Context, exp ExportConfig) (*S3Config, error) {
	if exp.Bucket == "" {
		return nil, fmt.Errorf("export bucket is not configured")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(exp.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: exp.Bucket,
		Prefix:     exp.Prefix,
	}, nil
}
