package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/mock"
)

type mockFlowAPI struct {
	mock.Mock
}

func (m *mockFlowAPI) CreateFlow(ctx context.Context, params *bedrockagent.CreateFlowInput, _ ...func(*bedrockagent.Options)) (*bedrockagent.CreateFlowOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*bedrockagent.CreateFlowOutput)
	return output, args.Error(1)
}

func (m *mockFlowAPI) PrepareFlow(ctx context.Context, params *bedrockagent.PrepareFlowInput, _ ...func(*bedrockagent.Options)) (*bedrockagent.PrepareFlowOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*bedrockagent.PrepareFlowOutput)
	return output, args.Error(1)
}

func (m *mockFlowAPI) GetFlow(ctx context.Context, params *bedrockagent.GetFlowInput, _ ...func(*bedrockagent.Options)) (*bedrockagent.GetFlowOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*bedrockagent.GetFlowOutput)
	return output, args.Error(1)
}

type mockSTS struct {
	mock.Mock
}

func (m *mockSTS) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*sts.GetCallerIdentityOutput)
	return output, args.Error(1)
}

type mockListRoles struct {
	mock.Mock
}

func (m *mockListRoles) ListRoles(ctx context.Context, params *iam.ListRolesInput, _ ...func(*iam.Options)) (*iam.ListRolesOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*iam.ListRolesOutput)
	return output, args.Error(1)
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) GetObject(ctx context.Context, params *awsS3.GetObjectInput, _ ...func(*awsS3.Options)) (*awsS3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*awsS3.GetObjectOutput)
	return output, args.Error(1)
}
