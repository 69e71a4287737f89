package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nulzo/ai-gateway/internal/config"
	"github.com/nulzo/ai-gateway/internal/core/ports"
	"github.com/nulzo/ai-gateway/internal/core/services"
	"github.com/nulzo/ai-gateway/internal/core/usecase"
	imageopenai "github.com/nulzo/ai-gateway/internal/image/openai"
	"github.com/nulzo/ai-gateway/internal/llm"
	"github.com/nulzo/ai-gateway/internal/llm/mock"
	"github.com/nulzo/ai-gateway/internal/logger"
	"github.com/nulzo/ai-gateway/internal/platform/otel"
	"github.com/nulzo/ai-gateway/internal/skill"
	"github.com/nulzo/ai-gateway/internal/transport/grpcserver"
	"github.com/nulzo/ai-gateway/internal/transport/httpapi"
	"github.com/nulzo/ai-gateway/internal/transport/sideload"

	// Adapters register themselves via init().
	_ "github.com/nulzo/ai-gateway/internal/llm/anthropic"
	_ "github.com/nulzo/ai-gateway/internal/llm/gemini"
	_ "github.com/nulzo/ai-gateway/internal/llm/openai"
)

func main() {
	sideloadMode := flag.Bool("sideload", false, "serve JSON-RPC 2.0 over stdin/stdout instead of gRPC")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	// In sideload mode stdout carries the JSON-RPC stream, so every
	// diagnostic goes to stderr.
	logger.Initialize(cfg.Server.Env, *sideloadMode)
	defer logger.Sync()

	shutdownTracer, err := otel.InitTracer("ai-gateway", os.Stderr)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, defaultProvider := buildRouter(cfg)
	imageRouter := buildImageRouter(cfg)
	registry := skill.NewInMemoryRegistry(skill.Defaults()...)

	generateUC := usecase.NewGenerate(router)
	skillUC := usecase.NewExecuteSkill(registry)
	var imageUC *usecase.GenerateImage
	if imageRouter.Len() > 0 {
		imageUC = usecase.NewGenerateImage(imageRouter)
	} else {
		logger.Warn("no image providers configured, image generation disabled")
	}

	if *sideloadMode {
		svc := sideload.NewService(router, registry, skillUC, defaultProvider)
		if err := svc.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
			logger.Fatal("sideload dispatcher failed", zap.Error(err))
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			lis, err := net.Listen("tcp", cfg.GRPCAddr())
			if err != nil {
				return err
			}
			srv := grpcserver.New(router, generateUC, imageUC, skillUC)
			return srv.Serve(gctx, lis)
		})
		g.Go(func() error {
			return httpapi.New(cfg.Server.Env, router).Run(gctx, cfg.HTTPAddr())
		})

		if err := g.Wait(); err != nil && ctx.Err() == nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}

	logger.Info("shutting down")
	if err := shutdownTracer(context.Background()); err != nil {
		logger.Error("tracer shutdown failed", zap.Error(err))
	}
}

// buildRouter creates text providers from config. When nothing usable
// is configured it falls back to the mock provider so the service
// still answers, and returns the name of the default provider for
// requests that do not name one.
func buildRouter(cfg *config.Config) (*services.Router, string) {
	providers := make(map[string]ports.Provider)
	for name, pc := range cfg.Providers {
		if !pc.Enabled || pc.Image {
			continue
		}
		p, err := llm.Build(name, pc)
		if err != nil {
			logger.Error("skipping provider", zap.String("provider", name), zap.Error(err))
			continue
		}
		providers[name] = p
		logger.Info("registered provider", zap.String("provider", name), zap.String("type", pc.Type))
	}

	if len(providers) == 0 {
		logger.Warn("no providers configured, falling back to mock")
		providers["mock"] = mock.New("mock")
	}

	router := services.NewRouter(providers)
	names := router.ProviderNames()
	return router, names[0]
}

func buildImageRouter(cfg *config.Config) *services.ImageRouter {
	router := services.NewImageRouter(nil)
	for name, pc := range cfg.Providers {
		if !pc.Enabled || !pc.Image {
			continue
		}
		if pc.Type != "openai" {
			logger.Error("skipping image provider with unknown type",
				zap.String("provider", name), zap.String("type", pc.Type))
			continue
		}
		p, err := imageopenai.NewAdapter(name, pc)
		if err != nil {
			logger.Error("skipping image provider", zap.String("provider", name), zap.Error(err))
			continue
		}
		router.Register(name, p)
		logger.Info("registered image provider", zap.String("provider", name))
	}
	return router
}
