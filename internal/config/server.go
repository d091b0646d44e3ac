package config

import (
	chatHandler "EcommerceChatbot/internal/api/chat/handler"
	chatRepository "EcommerceChatbot/internal/api/chat/repository"
	chatService "EcommerceChatbot/internal/api/chat/service"
	"EcommerceChatbot/internal/dataset"
	"EcommerceChatbot/internal/middleware"
	"EcommerceChatbot/pkg/redis"
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"os"
	"time"
)

const defaultPort = "5001"

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	handlers    []handler
	store       *dataset.Store
	source      dataset.Source
	redisServer redis.IRedis
	cacheTTL    time.Duration
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.store == nil {
		server.store = dataset.NewStore()
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithDataset(store *dataset.Store) ServerOption {
	return func(s *Server) error {
		s.store = store
		return nil
	}
}

func WithDataSource(source dataset.Source) ServerOption {
	return func(s *Server) error {
		if source == nil {
			return fmt.Errorf("data source is required")
		}
		s.source = source
		return nil
	}
}

// WithRedisServer enables the answer cache. A nil server leaves it disabled.
func WithRedisServer(redisServer redis.IRedis, ttl time.Duration) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		s.cacheTTL = ttl
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.setupMiddleware()
	s.setupHealthCheck()
	s.setupMetrics()

	// Chat Domain
	chatRepo := chatRepository.New(s.store, s.log)
	chatServices := chatService.NewChatService(s.log, chatRepo, s.redisServer, s.cacheTTL)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.handlers = append(s.handlers, chatHandlers)
}

// LoadDataset fills the store from the configured source. It blocks until
// every table was attempted and is meant to run in its own goroutine while
// the server is already answering.
func (s *Server) LoadDataset(ctx context.Context) error {
	if s.source == nil {
		return errors.New("no data source configured")
	}
	return dataset.NewLoader(s.source, s.store, s.log).Load(ctx)
}

func (s *Server) Run() error {
	s.mountHandlers()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = defaultPort
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.engine.ShutdownWithTimeout(timeout)
}

func (s *Server) mountHandlers() {
	router := s.engine.Group("/api")

	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) setupMiddleware() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware)
	s.engine.Use(cors.New())
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
			"ready":   s.store.Generation() != "",
		})
	})
}

func (s *Server) setupMetrics() {
	s.engine.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
