package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type Account interface {
	GetAccountID(ctx context.Context) (string, error)
}

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type account struct {
	sts stsAPI
}

func NewSTS(config aws.Config) Account {
	return &account{
		sts: sts.NewFromConfig(config),
	}
}

func (a *account) GetAccountID(ctx context.Context) (string, error) {
	stsOutput, err := a.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", classify("GetCallerIdentity", err)
	}
	return aws.ToString(stsOutput.Account), nil
}
