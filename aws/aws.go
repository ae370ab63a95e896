package aws

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/entigolabs/entigo-flow-agent/common"
)

func GetAWSConfig(ctx context.Context, awsFlags common.AWS) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsFlags.Region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to initialize AWS session: %w", err)
	}
	if awsFlags.RoleArn != "" {
		cfg.Credentials = aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), awsFlags.RoleArn))
		log.Printf("Assuming role %s\n", awsFlags.RoleArn)
	}
	log.Printf("AWS session initialized with region: %s\n", cfg.Region)
	return cfg, nil
}
