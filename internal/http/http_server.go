package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	auth2 "gitlab.com/cgrader-2025.net/internal/core/services/auth"
	"gitlab.com/cgrader-2025.net/internal/core/services/grading"
	"gitlab.com/cgrader-2025.net/internal/handlers"
	"gitlab.com/cgrader-2025.net/internal/handlers/auth"
	"gitlab.com/cgrader-2025.net/internal/handlers/grade"
)

type ServiceProvider struct {
	gradingService grading.IGradingService

	ggAuth    auth2.IAuthService
	localAuth auth2.IAuthService
}

func NewServiceProvider(
	gradingService grading.IGradingService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
) *ServiceProvider {
	return &ServiceProvider{
		gradingService: gradingService,
		ggAuth:         ggAuth,
		localAuth:      localAuth,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	middleware      *handlers.MiddlewareProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, middleware *handlers.MiddlewareProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		middleware:      middleware,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	grade.
		NewGradeHandler(s.ServiceProvider.gradingService, s.logger).
		RegisterRoutes(r, s.middleware)
	auth.NewHandler().RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.ServiceName)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("Server forced to shutdown", "error", err)
		}
	}
}
