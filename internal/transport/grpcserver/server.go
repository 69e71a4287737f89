package grpcserver

import (
	"context"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	aiv1 "github.com/nulzo/ai-gateway/gen/ai/v1"
	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/core/services"
	"github.com/nulzo/ai-gateway/internal/core/usecase"
	"github.com/nulzo/ai-gateway/internal/logger"
)

// Version is reported by HealthCheck.
const Version = "0.1.0"

// Server exposes the gateway over gRPC. The image and skill use cases
// are optional; their RPCs answer Unimplemented when nil.
type Server struct {
	aiv1.UnimplementedAIServiceServer

	router   *services.Router
	generate *usecase.Generate
	image    *usecase.GenerateImage
	skill    *usecase.ExecuteSkill
}

func New(router *services.Router, generate *usecase.Generate, image *usecase.GenerateImage, skill *usecase.ExecuteSkill) *Server {
	return &Server{
		router:   router,
		generate: generate,
		image:    image,
		skill:    skill,
	}
}

// Serve registers the service and blocks on the listener until the
// context is cancelled, then drains in-flight RPCs.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	grpcServer := grpc.NewServer()
	aiv1.RegisterAIServiceServer(grpcServer, s)

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	logger.Info("grpc server listening", zap.String("addr", lis.Addr().String()))
	return grpcServer.Serve(lis)
}

// toStatus translates a domain error into a gRPC status. Anything not
// recognized as a caller fault or an availability problem is reported
// as a bare Internal so upstream detail never leaks to clients.
func toStatus(err error) error {
	switch domain.KindOf(err) {
	case domain.KindInvalidRequest, domain.KindProviderNotFound, domain.KindModelNotSupported:
		return status.Error(codes.InvalidArgument, err.Error())
	case domain.KindProviderUnavailable:
		return status.Error(codes.Unavailable, err.Error())
	default:
		logger.Error("internal error", zap.Error(err))
		return status.Error(codes.Internal, "Internal server error")
	}
}

func toDomainRequest(req *aiv1.GenerateRequest) (*domain.GenerationRequest, error) {
	maxTokens := int(req.GetMaxTokens())
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	temperature := req.GetTemperature()
	if temperature <= 0 {
		temperature = 0.7
	}
	topP := req.GetTopP()
	if topP <= 0 {
		topP = 1.0
	}

	history := make([]domain.Message, 0, len(req.GetHistory()))
	for _, m := range req.GetHistory() {
		history = append(history, domain.Message{
			Role:    m.GetRole(),
			Content: m.GetContent(),
			Name:    m.GetName(),
		})
	}

	return domain.NewGenerationRequest(req.GetPrompt(), req.GetModel(), req.GetProvider(),
		domain.WithMaxTokens(maxTokens),
		domain.WithTemperature(temperature),
		domain.WithTopP(topP),
		domain.WithHistory(history),
		domain.WithSystemInstruction(req.GetSystemInstruction()),
		domain.WithMetadata(req.GetMetadata()),
	)
}

func (s *Server) Generate(ctx context.Context, req *aiv1.GenerateRequest) (*aiv1.GenerateResponse, error) {
	dreq, err := toDomainRequest(req)
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := s.generate.Execute(ctx, dreq)
	if err != nil {
		return nil, toStatus(err)
	}

	return &aiv1.GenerateResponse{
		RequestId:    result.RequestID,
		Content:      result.Content,
		ModelUsed:    result.ModelUsed,
		TokensUsed:   int32(result.TokensUsed),
		FinishReason: string(result.FinishReason),
		Metadata:     result.Metadata,
	}, nil
}

func (s *Server) GenerateStream(req *aiv1.GenerateRequest, stream aiv1.AIService_GenerateStreamServer) error {
	ctx := stream.Context()

	dreq, err := toDomainRequest(req)
	if err != nil {
		return toStatus(err)
	}

	fragments, err := s.generate.ExecuteStream(ctx, dreq)
	if err != nil {
		return toStatus(err)
	}

	for f := range fragments {
		if f.Err != nil {
			return toStatus(f.Err)
		}
		chunk := &aiv1.GenerateStreamChunk{
			RequestId: dreq.ID,
			Content:   f.Content,
		}
		if err := stream.Send(chunk); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}

	// Terminal marker. Clients rely on exactly one final chunk.
	return stream.Send(&aiv1.GenerateStreamChunk{
		RequestId: dreq.ID,
		IsFinal:   true,
	})
}

func (s *Server) GenerateImage(ctx context.Context, req *aiv1.ImageRequest) (*aiv1.ImageResponse, error) {
	if s.image == nil {
		return nil, status.Error(codes.Unimplemented, "Image generation is not configured")
	}

	var opts []domain.ImageOption
	if req.GetWidth() > 0 && req.GetHeight() > 0 {
		opts = append(opts, domain.WithDimensions(int(req.GetWidth()), int(req.GetHeight())))
	}
	if req.GetNumImages() > 0 {
		opts = append(opts, domain.WithNumImages(int(req.GetNumImages())))
	}

	dreq, err := domain.NewImageRequest(req.GetPrompt(), req.GetModel(), req.GetProvider(), opts...)
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := s.image.Execute(ctx, dreq)
	if err != nil {
		return nil, toStatus(err)
	}

	return &aiv1.ImageResponse{
		ImageUrls: result.ImageURLs,
		ModelUsed: result.ModelUsed,
	}, nil
}

func (s *Server) ExecuteSkill(ctx context.Context, req *aiv1.SkillRequest) (*aiv1.SkillResponse, error) {
	if s.skill == nil {
		return nil, status.Error(codes.Unimplemented, "Skill execution is not configured")
	}

	dreq := domain.NewSkillRequest(req.GetSkillId(), req.GetInput(), req.GetConfig())
	result := s.skill.Execute(ctx, dreq)
	if result.ErrorCode == domain.SkillErrNotFound {
		return nil, status.Error(codes.InvalidArgument, result.ErrorMessage)
	}

	return &aiv1.SkillResponse{
		Output:       result.Output,
		Success:      result.Success,
		ErrorMessage: result.ErrorMessage,
	}, nil
}

// HealthCheck reports SERVING whenever the process can answer, with a
// per-provider availability map for operators.
func (s *Server) HealthCheck(ctx context.Context, _ *aiv1.HealthCheckRequest) (*aiv1.HealthCheckResponse, error) {
	providers := make(map[string]bool)
	for name, p := range s.router.Providers() {
		providers[name] = probe(ctx, p)
	}
	return &aiv1.HealthCheckResponse{
		Status:          aiv1.HealthCheckResponse_SERVING,
		Version:         Version,
		ProvidersStatus: providers,
	}, nil
}

func probe(ctx context.Context, p interface {
	IsAvailable(context.Context) bool
}) (available bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("provider availability probe panicked", zap.Any("panic", r))
			available = false
		}
	}()
	return p.IsAvailable(ctx)
}
