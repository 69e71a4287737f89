package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is one turn of conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// GenerationRequest is the aggregate handed to the router. It is
// validated at construction and must not be mutated afterwards;
// providers receive it read-only.
type GenerationRequest struct {
	ID                string
	Prompt            string
	Model             string
	Provider          string
	MaxTokens         int
	Temperature       float64
	TopP              float64
	Metadata          map[string]string
	History           []Message
	SystemInstruction string
	CreatedAt         time.Time
}

// GenerationOption customizes a request at construction time.
type GenerationOption func(*GenerationRequest)

// WithMaxTokens sets the output token bound.
func WithMaxTokens(n int) GenerationOption {
	return func(r *GenerationRequest) { r.MaxTokens = n }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) GenerationOption {
	return func(r *GenerationRequest) { r.Temperature = t }
}

// WithTopP sets the nucleus-sampling bound.
func WithTopP(p float64) GenerationOption {
	return func(r *GenerationRequest) { r.TopP = p }
}

// WithHistory attaches ordered conversation history.
func WithHistory(history []Message) GenerationOption {
	return func(r *GenerationRequest) { r.History = history }
}

// WithSystemInstruction sets the system instruction.
func WithSystemInstruction(s string) GenerationOption {
	return func(r *GenerationRequest) { r.SystemInstruction = s }
}

// WithMetadata attaches free-form metadata.
func WithMetadata(md map[string]string) GenerationOption {
	return func(r *GenerationRequest) { r.Metadata = md }
}

// WithRequestID overrides the generated identity.
func WithRequestID(id string) GenerationOption {
	return func(r *GenerationRequest) { r.ID = id }
}

// NewGenerationRequest validates and constructs a request. An invalid
// combination never reaches the router.
func NewGenerationRequest(prompt, model, provider string, opts ...GenerationOption) (*GenerationRequest, error) {
	r := &GenerationRequest{
		ID:          uuid.NewString(),
		Prompt:      prompt,
		Model:       model,
		Provider:    provider,
		MaxTokens:   8192,
		Temperature: 0.7,
		TopP:        0.95,
		Metadata:    map[string]string{},
		CreatedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if strings.TrimSpace(r.Prompt) == "" {
		return nil, InvalidRequestError("prompt cannot be empty")
	}
	if r.MaxTokens <= 0 {
		return nil, InvalidRequestError("max tokens must be positive")
	}
	if r.Temperature < 0.0 || r.Temperature > 2.0 {
		return nil, InvalidRequestError("temperature must be between 0.0 and 2.0")
	}
	if r.TopP < 0.0 || r.TopP > 1.0 {
		return nil, InvalidRequestError("top-p must be between 0.0 and 1.0")
	}
	return r, nil
}

// FullModelName returns the provider-qualified model name.
func (r *GenerationRequest) FullModelName() string {
	return r.Provider + "/" + r.Model
}

// FinishReason enumerates why a generation stopped.
type FinishReason string

const (
	FinishStop       FinishReason = "stop"
	FinishLength     FinishReason = "length"
	FinishSafety     FinishReason = "safety"
	FinishRecitation FinishReason = "recitation"
	FinishOther      FinishReason = "other"
)

// GenerationResult is a completed generation. An empty or failed
// generation is represented by an error at the call site, never by a
// zero-value result.
type GenerationResult struct {
	ID           string
	RequestID    string
	Content      string
	ModelUsed    string
	TokensUsed   int
	FinishReason FinishReason
	Metadata     map[string]string
	CreatedAt    time.Time
}

// NewGenerationResult validates and constructs a result.
func NewGenerationResult(requestID, content, modelUsed string, tokensUsed int, reason FinishReason) (*GenerationResult, error) {
	if requestID == "" {
		return nil, InvalidRequestError("request ID cannot be empty")
	}
	if content == "" {
		return nil, InvalidRequestError("content cannot be empty")
	}
	if reason == "" {
		reason = FinishStop
	}
	return &GenerationResult{
		ID:           uuid.NewString(),
		RequestID:    requestID,
		Content:      content,
		ModelUsed:    modelUsed,
		TokensUsed:   tokensUsed,
		FinishReason: reason,
		Metadata:     map[string]string{},
		CreatedAt:    time.Now(),
	}, nil
}

// IsComplete reports whether generation ran to a natural stop.
func (r *GenerationResult) IsComplete() bool {
	return r.FinishReason == FinishStop
}

// WasTruncated reports whether the output hit the token bound.
func (r *GenerationResult) WasTruncated() bool {
	return r.FinishReason == FinishLength
}
