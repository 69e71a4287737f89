package sideload

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/core/usecase"
)

type toolExecuteParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	Context   map[string]any `json:"context,omitempty"`
}

type toolExecuteResult struct {
	Output  string `json:"output"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ToolHandler serves tool/execute against the skill registry.
type ToolHandler struct {
	registry ports.SkillRegistry
	executor *usecase.ExecuteSkill
}

func NewToolHandler(registry ports.SkillRegistry, executor *usecase.ExecuteSkill) *ToolHandler {
	return &ToolHandler{registry: registry, executor: executor}
}

// HandleExecute runs a skill. The "input" argument (or "text" as a
// fallback) becomes the skill input; every other argument is passed
// through as string config.
func (h *ToolHandler) HandleExecute(ctx context.Context, raw json.RawMessage) (any, error) {
	var params toolExecuteParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, domain.ProtocolError(fmt.Sprintf("invalid tool/execute params: %v", err))
		}
	}

	input, config := splitArguments(params.Arguments)
	result := h.executor.Execute(ctx, domain.NewSkillRequest(params.Name, input, config))

	switch {
	case result.ErrorCode == domain.SkillErrNotFound:
		return toolExecuteResult{
			Output:  fmt.Sprintf("Tool '%s' not found", params.Name),
			Success: false,
			Error:   "tool_not_found",
		}, nil
	case !result.Success:
		return toolExecuteResult{
			Output:  fmt.Sprintf("Error executing '%s': %s", params.Name, result.ErrorMessage),
			Success: false,
			Error:   result.ErrorMessage,
		}, nil
	default:
		return toolExecuteResult{Output: result.Output, Success: true}, nil
	}
}

func splitArguments(args map[string]any) (string, map[string]string) {
	var input string
	if v, ok := args["input"]; ok {
		input = fmt.Sprint(v)
	} else if v, ok := args["text"]; ok {
		input = fmt.Sprint(v)
	}

	config := make(map[string]string)
	for k, v := range args {
		if k == "input" || k == "text" {
			continue
		}
		config[k] = fmt.Sprint(v)
	}
	return input, config
}

type toolCapability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Capabilities lists registered skills for the initialize response.
func (h *ToolHandler) Capabilities() []toolCapability {
	skills := h.registry.List()
	caps := make([]toolCapability, 0, len(skills))
	for _, s := range skills {
		caps = append(caps, toolCapability{Name: s.Name(), Description: s.Description()})
	}
	return caps
}
