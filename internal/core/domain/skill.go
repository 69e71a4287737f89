package domain

import (
	"time"

	"github.com/google/uuid"
)

// Skill failure codes. A failed SkillResult is a normal outcome, not
// an error: the executor reports every path as a result value.
const (
	SkillErrNotFound  = "not_found"
	SkillErrExecution = "execution_error"
)

// SkillRequest asks for one skill invocation by id.
type SkillRequest struct {
	ID        string
	SkillID   string
	Input     string
	Config    map[string]string
	CreatedAt time.Time
}

// NewSkillRequest constructs a skill request.
func NewSkillRequest(skillID, input string, config map[string]string) *SkillRequest {
	if config == nil {
		config = map[string]string{}
	}
	return &SkillRequest{
		ID:        uuid.NewString(),
		SkillID:   skillID,
		Input:     input,
		Config:    config,
		CreatedAt: time.Now(),
	}
}

// SkillResult is the outcome of a skill invocation.
type SkillResult struct {
	ID           string
	Output       string
	Success      bool
	ErrorCode    string
	ErrorMessage string
	CreatedAt    time.Time
}

// NewSkillResult constructs a successful result.
func NewSkillResult(output string) *SkillResult {
	return &SkillResult{
		ID:        uuid.NewString(),
		Output:    output,
		Success:   true,
		CreatedAt: time.Now(),
	}
}

// FailedSkillResult constructs a failed result with a stable code.
func FailedSkillResult(code, message string) *SkillResult {
	return &SkillResult{
		ID:           uuid.NewString(),
		Success:      false,
		ErrorCode:    code,
		ErrorMessage: message,
		CreatedAt:    time.Now(),
	}
}
