package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todoboard/internal/auth"
	"todoboard/internal/config"
	"todoboard/internal/database"
	"todoboard/internal/events"
	"todoboard/internal/handler"
	"todoboard/internal/kanban"
	"todoboard/internal/middleware"
	"todoboard/internal/repository"
	"todoboard/internal/session"
	"todoboard/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	Engine   *gin.Engine
	DB       *gorm.DB
	Config   *config.Config
	Sessions *session.Manager
	Hub      *events.Hub

	listener *events.Listener
}

// Init connects to the database, applies migrations and builds the server.
func Init(cfg *config.Config) (*Server, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	s, err := New(cfg, db)
	if err != nil {
		return nil, err
	}

	if cfg.EventsEnabled {
		listener, err := events.NewListener(cfg.DSN(), cfg.EventsChannel, s.Hub)
		if err != nil {
			return nil, fmt.Errorf("failed to start event listener: %w", err)
		}
		s.listener = listener
	}
	return s, nil
}

// New wires repositories, handlers and routes on top of an open database.
func New(cfg *config.Config, db *gorm.DB) (*Server, error) {
	if err := validation.RegisterGin(); err != nil {
		return nil, err
	}

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(db)
	userRepo := repository.NewUserRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Changes go through postgres NOTIFY when enabled so that every instance
	// sees them; otherwise straight to the local hub.
	hub := events.NewHub()
	var publisher events.Publisher = hub
	if cfg.EventsEnabled {
		publisher = events.NewPGNotifier(db, cfg.EventsChannel)
	}

	store := kanban.NewRepositoryStore(boardRepo, columnRepo, todoRepo)
	sessions := session.NewManager(func(boardID uuid.UUID) *kanban.Session {
		return kanban.NewSession(store, boardID, slog.Default())
	}, cfg.SessionTTL)

	issuer := auth.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardRepo, publisher)
	userHandler := handler.NewUserHandler(userRepo, boardRepo, issuer, publisher)
	columnHandler := handler.NewColumnHandler(columnRepo, boardRepo, publisher)
	todoHandler := handler.NewTodoHandler(todoRepo, columnRepo, boardRepo, publisher)
	sessionHandler := handler.NewSessionHandler(sessions, publisher)
	eventsHandler := handler.NewEventsHandler(hub, boardRepo)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			slog.Error("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	api.Use(middleware.ActorMiddleware(issuer))
	{
		// Board routes
		api.POST("/boards", boardHandler.Create)
		api.GET("/boards", boardHandler.List)
		api.GET("/boards/:id", boardHandler.GetByID)
		api.PUT("/boards/:id", boardHandler.Update)
		api.DELETE("/boards/:id", boardHandler.Delete)
		api.GET("/boards/:id/stats", boardHandler.Stats)

		// User routes
		api.POST("/users", userHandler.Create)
		api.POST("/boards/:id/users", userHandler.AddMember)
		api.GET("/boards/:id/users", userHandler.List)
		api.DELETE("/users/:id", userHandler.Delete)
		api.POST("/users/:id/switch", userHandler.Switch)

		// Column routes
		api.GET("/boards/:id/columns", columnHandler.List)
		api.POST("/boards/:id/columns", columnHandler.Create)
		api.POST("/boards/:id/columns/reorder", columnHandler.Reorder)
		api.PUT("/columns/:id", columnHandler.Update)
		api.DELETE("/columns/:id", columnHandler.Delete)

		// Todo routes
		api.GET("/boards/:id/todos", todoHandler.List)
		api.POST("/boards/:id/todos", todoHandler.Create)
		api.POST("/boards/:id/todos/delete", todoHandler.DeleteMany)
		api.POST("/boards/:id/todos/error", todoHandler.MarkError)
		api.GET("/todos/:id", todoHandler.GetByID)
		api.PUT("/todos/:id", todoHandler.Update)
		api.POST("/todos/:id/move", todoHandler.Move)
		api.DELETE("/todos/:id", todoHandler.Delete)

		// Error room routes
		api.GET("/boards/:id/error-room", todoHandler.ErrorRoom)
		api.PUT("/todos/:id/comment", todoHandler.Comment)

		// Kanban view routes
		api.POST("/boards/:id/sessions", sessionHandler.Open)
		api.GET("/sessions/:sid", sessionHandler.Get)
		api.DELETE("/sessions/:sid", sessionHandler.Close)
		api.POST("/sessions/:sid/reload", sessionHandler.Reload)
		api.POST("/sessions/:sid/modes/:mode", sessionHandler.ToggleMode)
		api.POST("/sessions/:sid/select", sessionHandler.Select)
		api.POST("/sessions/:sid/confirm", sessionHandler.Confirm)
		api.POST("/sessions/:sid/cancel", sessionHandler.Cancel)
		api.POST("/sessions/:sid/todos", sessionHandler.AddTodo)
		api.PUT("/sessions/:sid/todos/:todo_id", sessionHandler.UpdateTodo)
		api.POST("/sessions/:sid/todos/:todo_id/edit", sessionHandler.BeginEdit)
		api.POST("/sessions/:sid/todos/:todo_id/drop", sessionHandler.DropTodo)
		api.POST("/sessions/:sid/todos/:todo_id/comment", sessionHandler.CommentTodo)
		api.POST("/sessions/:sid/columns/:status/move", sessionHandler.MoveTodo)
		api.POST("/sessions/:sid/columns", sessionHandler.AddColumn)
		api.POST("/sessions/:sid/columns/reorder", sessionHandler.ReorderColumns)
		api.PUT("/sessions/:sid/columns/:column_id", sessionHandler.EditColumn)
		api.DELETE("/sessions/:sid/columns/:column_id", sessionHandler.RemoveColumn)

		// Change notifications
		api.GET("/boards/:id/events", eventsHandler.Stream)
	}

	return &Server{
		Engine:   r,
		DB:       db,
		Config:   cfg,
		Sessions: sessions,
		Hub:      hub,
	}, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ":"+s.Config.ServerPort)
	if err != nil {
		slog.Error("failed to listen", "error", err)
		os.Exit(1)
	}

	if err := s.Serve(ctx, ln); err != nil {
		slog.Error("server stopped", "error", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("server exited properly")
}

// Serve handles requests on ln until ctx is done. In-flight requests are
// drained before the session janitor and the event listener stop.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	workers, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	go s.Sessions.Run(workers, sweepInterval)
	if s.listener != nil {
		go s.listener.Run(workers)
	}

	srv := &http.Server{Handler: s.Engine}
	// Event streams never finish on their own.
	srv.RegisterOnShutdown(s.Hub.Close)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", ln.Addr().String())
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
