// Package server contains the HTTP handlers for the application's routes.
package server

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/middleware"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/sessionstore"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	sessions       *session.Store
	sessionStorage *sessionstore.RedisStorage
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	userRepo       repository.UserRepository
	taskRepo       repository.TaskRepository
	postService    *service.PostService
	commentService *service.CommentService
	authService    *service.AuthService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return newServer(cfg, db)
}

// newServer wires repositories, services and the session store around an
// already-open database connection.
func newServer(cfg *config.Config, db *gorm.DB) (*Server, error) {
	server := &Server{
		config:      cfg,
		db:          db,
		postRepo:    repository.NewPostRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		userRepo:    repository.NewUserRepository(db),
		taskRepo:    repository.NewTaskRepository(db),
	}
	server.postService = service.NewPostService(server.postRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo)
	server.authService = service.NewAuthService(server.userRepo)

	sessionConfig := session.Config{
		KeyLookup:  "cookie:" + cfg.SessionCookie,
		Expiration: 24 * time.Hour,
	}
	if cfg.RedisURL != "" {
		storage, err := sessionstore.NewRedisStorage(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("session storage connection failed: %w", err)
		}
		server.sessionStorage = storage
		sessionConfig.Storage = storage
		middleware.Logger.Info("Session state externalized to Redis")
	}
	server.sessions = session.New(sessionConfig)

	return server, nil
}

// SetupMiddleware registers the application middleware stack on the app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())

	prom := fiberprometheus.New("inkwell")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)
}

// SetupRoutes registers all route handlers on the app.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Index)
	app.Get("/post/:id", s.ShowPost)
	app.Post("/post/:id", s.AddComment)

	app.Get("/dashboard", s.Dashboard)
	app.Post("/dashboard", s.CreateDashboardPost)

	app.Get("/signup", s.SignupForm)
	app.Post("/signup", s.Signup)
	app.Get("/login", s.LoginForm)
	app.Post("/login", s.Login)
	app.Get("/logout", s.Logout)

	admin := app.Group("/admin")
	admin.Get("/dashboard", s.AdminDashboard)
	admin.Get("/update_post/:id", s.UpdatePostForm)
	admin.Post("/update_post/:id", s.UpdatePost)
	admin.Get("/delete_post/:id", s.DeletePost)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.sessionStorage != nil {
		if err := s.sessionStorage.Close(); err != nil {
			return err
		}
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
