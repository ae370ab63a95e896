package service

import (
	"context"
	"fmt"
	"log"

	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/entigolabs/entigo-flow-agent/model"
	"github.com/google/uuid"
)

const executionRolePrefix = "AmazonBedrockExecutionRoleForFlows_"

type Deployer struct {
	flows            FlowManager
	roles            RoleFinder
	executionRoleArn string
	newToken         func() string
}

// NewDeployer creates a deployer. roles is only consulted when set and no
// explicit executionRoleArn is given.
func NewDeployer(flows FlowManager, roles RoleFinder, executionRoleArn string) *Deployer {
	return &Deployer{
		flows:            flows,
		roles:            roles,
		executionRoleArn: executionRoleArn,
		newToken:         uuid.NewString,
	}
}

// Deploy creates the flow and starts its preparation. A non-nil error means
// the flow must not be invoked. When creation succeeds but preparation fails
// the returned deployment still carries the created flow identifier.
func (d *Deployer) Deploy(ctx context.Context, flow model.FlowDocument, accountID string) (*model.Deployment, error) {
	roleArn := d.getExecutionRole(ctx, accountID)
	deployment, err := d.flows.CreateFlow(ctx, model.FlowRequest{
		Name:             flow.Name,
		Description:      flow.Description,
		ExecutionRoleArn: roleArn,
		Definition:       flow.Definition,
		Tags:             flow.Tags,
		ClientToken:      d.newToken(),
	})
	if err != nil {
		common.PrintError(fmt.Errorf("error creating flow: %w", err))
		return nil, err
	}
	if deployment.ExecutionRoleArn == "" {
		deployment.ExecutionRoleArn = roleArn
	}
	log.Println("Flow created successfully")
	log.Printf("Flow ID: %s\n", deployment.FlowID)
	log.Printf("Flow ARN: %s\n", deployment.FlowArn)

	status, err := d.flows.PrepareFlow(ctx, deployment.FlowID)
	if err != nil {
		common.PrintError(fmt.Errorf("error preparing flow %s: %w", deployment.FlowID, err))
		return &deployment, err
	}
	deployment.Status = string(status)
	deployment.PrepareInitiated = true
	log.Println("Flow preparation initiated")
	return &deployment, nil
}

func (d *Deployer) getExecutionRole(ctx context.Context, accountID string) string {
	if d.executionRoleArn != "" {
		return d.executionRoleArn
	}
	fallback := DefaultExecutionRole(accountID)
	if d.roles == nil {
		return fallback
	}
	roleArn, err := d.roles.FindRoleByPrefix(ctx, executionRolePrefix)
	if err != nil {
		common.PrintWarning(fmt.Sprintf("Couldn't resolve flow execution role, using %s: %s", fallback, err))
		return fallback
	}
	log.Printf("Using flow execution role %s\n", roleArn)
	return roleArn
}

func DefaultExecutionRole(accountID string) string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s*", accountID, executionRolePrefix)
}
