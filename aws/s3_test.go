package aws

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/entigolabs/entigo-flow-agent/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetFile(t *testing.T) {
	client := new(mockS3)
	client.On("GetObject", mock.Anything, &awsS3.GetObjectInput{Bucket: aws.String("flows"), Key: aws.String("flow.json")}).
		Return(&awsS3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(`{"name":"flow"}`))}, nil)

	content, err := (&S3{awsS3: client}).GetFile(context.Background(), "flows", "flow.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"flow"}`, string(content))
}

func TestGetFileMissing(t *testing.T) {
	for _, missing := range []error{&types.NoSuchKey{}, &smithy.GenericAPIError{Code: "NoSuchKey"}} {
		client := new(mockS3)
		client.On("GetObject", mock.Anything, mock.Anything).Return(nil, missing)

		_, err := (&S3{awsS3: client}).GetFile(context.Background(), "flows", "missing.json")
		var notFound model.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	}
}

func TestGetFileDenied(t *testing.T) {
	client := new(mockS3)
	client.On("GetObject", mock.Anything, mock.Anything).Return(nil, &smithy.GenericAPIError{Code: "AccessDenied"})

	_, err := (&S3{awsS3: client}).GetFile(context.Background(), "flows", "flow.json")
	assert.Equal(t, model.ErrorKindAuth, model.KindOf(err))
}
