package usecase

import (
	"context"
	"fmt"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/logger"
	"go.uber.org/zap"
)

// ExecuteSkill resolves a skill by id and runs it. Every code path
// returns a result: a missing skill or a failing skill body becomes a
// failed result value, never an error to the caller.
type ExecuteSkill struct {
	registry ports.SkillRegistry
}

// NewExecuteSkill creates the skill use case.
func NewExecuteSkill(registry ports.SkillRegistry) *ExecuteSkill {
	return &ExecuteSkill{registry: registry}
}

// Execute runs one skill request.
func (e *ExecuteSkill) Execute(ctx context.Context, req *domain.SkillRequest) *domain.SkillResult {
	skill, ok := e.registry.Get(req.SkillID)
	if !ok {
		return domain.FailedSkillResult(
			domain.SkillErrNotFound,
			fmt.Sprintf("skill '%s' not found", req.SkillID),
		)
	}

	output, err := e.invoke(ctx, skill, req)
	if err != nil {
		logger.Warn("skill execution failed",
			zap.String("skill", req.SkillID),
			zap.Error(err),
		)
		return domain.FailedSkillResult(
			domain.SkillErrExecution,
			fmt.Sprintf("error executing skill: %v", err),
		)
	}
	return domain.NewSkillResult(output)
}

// invoke shields the executor from panicking skill bodies; a panic is
// converted into an error like any other fault.
func (e *ExecuteSkill) invoke(ctx context.Context, skill ports.Skill, req *domain.SkillRequest) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("skill panicked: %v", r)
		}
	}()
	return skill.Execute(ctx, req.Input, req.Config)
}
