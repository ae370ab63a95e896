package aws

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/entigolabs/entigo-flow-agent/model"
)

type s3API interface {
	GetObject(ctx context.Context, params *awsS3.GetObjectInput, optFns ...func(*awsS3.Options)) (*awsS3.GetObjectOutput, error)
}

type S3 struct {
	awsS3 s3API
}

func NewS3(awsConfig aws.Config) *S3 {
	return &S3{
		awsS3: awsS3.NewFromConfig(awsConfig),
	}
}

func (s *S3) GetFile(ctx context.Context, bucket, key string) ([]byte, error) {
	output, err := s.awsS3.GetObject(ctx, &awsS3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var apiErr smithy.APIError
		if errors.As(err, &noSuchKey) || (errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			return nil, model.NewNotFoundError(fmt.Sprintf("s3://%s/%s", bucket, key))
		}
		return nil, classify("GetObject", err)
	}
	defer output.Body.Close()
	return io.ReadAll(output.Body)
}
