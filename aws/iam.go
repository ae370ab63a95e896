package aws

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/entigolabs/entigo-flow-agent/model"
)

type IAM struct {
	iamClient iam.ListRolesAPIClient
}

func NewIAM(config aws.Config) *IAM {
	return &IAM{
		iamClient: iam.NewFromConfig(config),
	}
}

// FindRoleByPrefix returns the arn of the first role whose name starts with prefix.
func (i *IAM) FindRoleByPrefix(ctx context.Context, prefix string) (string, error) {
	paginator := iam.NewListRolesPaginator(i.iamClient, &iam.ListRolesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", classify("ListRoles", err)
		}
		for _, role := range page.Roles {
			if strings.HasPrefix(aws.ToString(role.RoleName), prefix) {
				slog.Debug(fmt.Sprintf("Found role %s for prefix %s", aws.ToString(role.RoleName), prefix))
				return aws.ToString(role.Arn), nil
			}
		}
	}
	return "", model.NewNotFoundError(fmt.Sprintf("role with prefix %s", prefix))
}
