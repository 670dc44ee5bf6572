package config

import (
	"fmt"
	"os"

	chatHandler "StorefrontGolang/internal/api/chat/handler"
	chatRepository "StorefrontGolang/internal/api/chat/repository"
	chatService "StorefrontGolang/internal/api/chat/service"
	"StorefrontGolang/internal/middleware"
	"StorefrontGolang/pkg/bot"
	"StorefrontGolang/pkg/redis"
	"StorefrontGolang/pkg/s3"
	"StorefrontGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	s3Client    s3.ItfS3
	delayPolicy chatService.DelayPolicy
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

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

// WithS3Client is optional: without export storage the download endpoint
// still works, only ?upload=true is refused.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		if os.Getenv("AWS_BUCKET_NAME") == "" {
			if s.log != nil {
				s.log.Warn("AWS_BUCKET_NAME not set, export uploads disabled")
			}
			return nil
		}

		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
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

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithDelayPolicy(policy chatService.DelayPolicy) ServerOption {
	return func(s *Server) error {
		s.delayPolicy = policy
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Chat Domain
	selector := bot.NewSelector(bot.DefaultTaxonomy(), bot.DefaultIntents())
	chatRepo := chatRepository.New(s.redisServer, s.log)
	chatServices := chatService.New(s.log, chatRepo, selector, s.s3Client, s.utils, s.delayPolicy)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
