package awss3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type service struct {
	client *s3.Client
	region string
}

type S3Service interface {
	UploadReport(ctx context.Context, bucket, key string, body []byte) error
}
