package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageRequest is the aggregate for image generation.
type ImageRequest struct {
	ID        string
	Prompt    string
	Model     string
	Provider  string
	Width     int
	Height    int
	NumImages int
	CreatedAt time.Time
}

// ImageOption customizes an image request at construction time.
type ImageOption func(*ImageRequest)

// WithDimensions sets the output size.
func WithDimensions(width, height int) ImageOption {
	return func(r *ImageRequest) {
		r.Width = width
		r.Height = height
	}
}

// WithNumImages sets how many images to produce.
func WithNumImages(n int) ImageOption {
	return func(r *ImageRequest) { r.NumImages = n }
}

// NewImageRequest validates and constructs an image request.
func NewImageRequest(prompt, model, provider string, opts ...ImageOption) (*ImageRequest, error) {
	r := &ImageRequest{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		Model:     model,
		Provider:  provider,
		Width:     1024,
		Height:    1024,
		NumImages: 1,
		CreatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if strings.TrimSpace(r.Prompt) == "" {
		return nil, InvalidRequestError("prompt cannot be empty")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return nil, InvalidRequestError("dimensions must be positive")
	}
	if r.NumImages <= 0 {
		return nil, InvalidRequestError("number of images must be positive")
	}
	return r, nil
}

// ImageResult lists where the generated images live.
type ImageResult struct {
	ID        string
	RequestID string
	ImageURLs []string
	ModelUsed string
	CreatedAt time.Time
}

// NewImageResult validates and constructs an image result.
func NewImageResult(requestID string, urls []string, modelUsed string) (*ImageResult, error) {
	if requestID == "" {
		return nil, InvalidRequestError("request ID cannot be empty")
	}
	return &ImageResult{
		ID:        uuid.NewString(),
		RequestID: requestID,
		ImageURLs: urls,
		ModelUsed: modelUsed,
		CreatedAt: time.Now(),
	}, nil
}
