package config

import (
	"ProjectRoameo/database/postgres"
	assistantHandler "ProjectRoameo/internal/api/assistant/handler"
	assistantService "ProjectRoameo/internal/api/assistant/service"
	paymentHandler "ProjectRoameo/internal/api/payment/handler"
	paymentRepository "ProjectRoameo/internal/api/payment/repository"
	paymentService "ProjectRoameo/internal/api/payment/service"
	profileHandler "ProjectRoameo/internal/api/profile/handler"
	profileRepository "ProjectRoameo/internal/api/profile/repository"
	profileService "ProjectRoameo/internal/api/profile/service"
	"ProjectRoameo/internal/middleware"
	"ProjectRoameo/pkg/bcrypt"
	"ProjectRoameo/pkg/doku"
	"ProjectRoameo/pkg/redis"
	"ProjectRoameo/pkg/scheduler"
	"ProjectRoameo/pkg/s3"
	"ProjectRoameo/pkg/smtp"
	"ProjectRoameo/pkg/utils"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	s3Client    s3.ItfS3
	scheduler   scheduler.Scheduler
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

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
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

func WithS3Client() ServerOption {
	return func(s *Server) error {
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

func WithScheduler() ServerOption {
	return func(s *Server) error {
		s.scheduler = scheduler.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Assistant Domain
	composeDelays := scheduler.NewComposeDelay(800*time.Millisecond, 700*time.Millisecond)
	assistantServices := assistantService.New(s.redisServer, s.utils, s.scheduler, composeDelays, s.log)
	assistantServices.FAQ().Watch(context.Background(), nil)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	// Profile Domain
	profileRepo := profileRepository.New(s.db, s.log)
	profileServices := profileService.New(s.log, profileRepo, s.bcryptUtils, s.smtpMailer, s.s3Client, s.utils)
	profileHandlers := profileHandler.New(s.log, s.validator, s.middleware, profileServices)

	// Payment Domain
	dokuClient := doku.NewDokuService(s.log)
	if err := dokuClient.Init(); err != nil {
		s.log.Warnf("Doku client not initialized, top-ups disabled: %v", err)
	}
	paymentRepo := paymentRepository.New(s.db, s.log)
	paymentServices := paymentService.New(s.log, paymentRepo, profileRepo, dokuClient, s.utils)
	paymentHandlers := paymentHandler.New(s.log, s.validator, s.middleware, paymentServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, assistantHandlers, profileHandlers, paymentHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

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
