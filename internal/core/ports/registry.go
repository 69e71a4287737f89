package ports

import "context"

// Skill is a named handler executed by id through the skill registry.
type Skill interface {
	Name() string
	Description() string
	Execute(ctx context.Context, input string, config map[string]string) (string, error)
}

// SkillRegistry maps skill names to handlers. Read-mostly: mutated at
// startup and via explicit registration, not during request handling.
type SkillRegistry interface {
	Get(id string) (Skill, bool)
	List() []Skill
	Register(s Skill)
}

// MediaHandler transcribes audio and analyzes images on behalf of skills
// that accept binary attachments. Implementations live outside the core;
// skills receive one through their configuration at registration time.
type MediaHandler interface {
	Transcribe(ctx context.Context, data []byte, mimeType, language string) (string, error)
	AnalyzeImage(ctx context.Context, data []byte, mimeType, prompt, model string) (string, error)
}
