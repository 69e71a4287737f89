package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/core/services"
)

type fakeProvider struct {
	available bool
	content   string
	fragments []string
	err       error
}

func (f *fakeProvider) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return domain.NewGenerationResult(req.ID, f.content, req.Model, 1, domain.FinishStop)
}

func (f *fakeProvider) GenerateStream(ctx context.Context, req *domain.GenerationRequest) (<-chan ports.Fragment, error) {
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan ports.Fragment, len(f.fragments))
	for _, fr := range f.fragments {
		ch <- ports.Fragment{Content: fr}
	}
	close(ch)
	return ch, nil
}

func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return f.available }
func (f *fakeProvider) SupportsModel(model string) bool      { return true }

func newGenerate(p ports.Provider) *Generate {
	return NewGenerate(services.NewRouter(map[string]ports.Provider{"fake": p}))
}

func TestGenerate_Execute(t *testing.T) {
	uc := newGenerate(&fakeProvider{available: true, content: "hello there"})

	req, err := domain.NewGenerationRequest("hi", "m", "fake")
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "hello there", result.Content)
	assert.Equal(t, req.ID, result.RequestID)
}

func TestGenerate_Execute_Unavailable(t *testing.T) {
	uc := newGenerate(&fakeProvider{available: false})

	req, err := domain.NewGenerationRequest("hi", "m", "fake")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindProviderUnavailable))
}

func TestGenerate_Execute_UnknownProvider(t *testing.T) {
	uc := newGenerate(&fakeProvider{available: true})

	req, err := domain.NewGenerationRequest("hi", "m", "nope")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindProviderNotFound))
}

func TestGenerate_ExecuteStream(t *testing.T) {
	uc := newGenerate(&fakeProvider{available: true, fragments: []string{"a", "b", "c"}})

	req, err := domain.NewGenerationRequest("hi", "m", "fake")
	require.NoError(t, err)

	ch, err := uc.ExecuteStream(context.Background(), req)
	require.NoError(t, err)

	var got []string
	for f := range ch {
		require.NoError(t, f.Err)
		got = append(got, f.Content)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestGenerate_ExecuteStream_Unavailable(t *testing.T) {
	uc := newGenerate(&fakeProvider{available: false})

	req, err := domain.NewGenerationRequest("hi", "m", "fake")
	require.NoError(t, err)

	_, err = uc.ExecuteStream(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindProviderUnavailable))
}
