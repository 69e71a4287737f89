package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/nulzo/ai-gateway/internal/core/services"
	"github.com/nulzo/ai-gateway/internal/logger"
	"github.com/nulzo/ai-gateway/internal/transport/grpcserver"
)

// Server is the HTTP admin surface next to the gRPC API. It exposes a
// health probe and the model catalog for operators and load balancers.
type Server struct {
	engine *gin.Engine
	router *services.Router
}

func New(env string, router *services.Router) *Server {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(ginzap.Ginzap(logger.Get(), time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(logger.Get(), true))
	engine.Use(otelgin.Middleware("ai-gateway"))

	s := &Server{engine: engine, router: router}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/v1/models", s.listModels)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) health(c *gin.Context) {
	providers := make(map[string]bool)
	for name, p := range s.router.Providers() {
		providers[name] = p.IsAvailable(c.Request.Context())
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "SERVING",
		"version":   grpcserver.Version,
		"providers": providers,
	})
}

func (s *Server) listModels(c *gin.Context) {
	type modelEntry struct {
		ID       string `json:"id"`
		Provider string `json:"provider"`
	}

	models := make([]modelEntry, 0)
	for provider, ids := range s.router.ListModels() {
		for _, id := range ids {
			models = append(models, modelEntry{ID: id, Provider: provider})
		}
	}
	c.JSON(http.StatusOK, gin.H{"object": "list", "data": models})
}

// Run serves until the context is cancelled, then shuts down with a
// short drain window.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http admin server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
