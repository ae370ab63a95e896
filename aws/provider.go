package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/entigolabs/entigo-flow-agent/common"
)

// Provider builds every client from one shared config.
type Provider struct {
	awsConfig aws.Config
}

func NewProvider(ctx context.Context, awsFlags common.AWS) (*Provider, error) {
	awsConfig, err := GetAWSConfig(ctx, awsFlags)
	if err != nil {
		return nil, err
	}
	return &Provider{awsConfig: awsConfig}, nil
}

func (p *Provider) GetAccount() Account {
	return NewSTS(p.awsConfig)
}

func (p *Provider) GetFlows() *Flows {
	return NewFlows(p.awsConfig)
}

func (p *Provider) GetRuntime() *Runtime {
	return NewRuntime(p.awsConfig)
}

func (p *Provider) GetIAM() *IAM {
	return NewIAM(p.awsConfig)
}

func (p *Provider) GetS3() *S3 {
	return NewS3(p.awsConfig)
}
