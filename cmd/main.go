package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/cgrader-2025.net/internal/adapter/cexec"
	"gitlab.com/cgrader-2025.net/internal/adapter/crypto"
	"gitlab.com/cgrader-2025.net/internal/adapter/postgres/reportrepository"
	"gitlab.com/cgrader-2025.net/internal/adapter/postgres/studentrepository"
	"gitlab.com/cgrader-2025.net/internal/adapter/redis/runlock"
	"gitlab.com/cgrader-2025.net/internal/config"
	auth2 "gitlab.com/cgrader-2025.net/internal/core/services/auth"
	"gitlab.com/cgrader-2025.net/internal/core/services/grading"
	logger2 "gitlab.com/cgrader-2025.net/internal/global/logger"
	"gitlab.com/cgrader-2025.net/internal/handlers"
	http2 "gitlab.com/cgrader-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting auto-grader service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	executor := cexec.NewExecutor(sysCfg.GraderCfg, logger)
	reportRepo := reportrepository.NewReportRepository(db, logger)
	studentPort := studentrepository.New(db, logger)
	runLock := runlock.NewRedisRunLock(redisClient, sysCfg.GraderCfg.RunLockTTL, logger)

	// PRIMARY PORTS
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	gradingSvc := grading.NewGradingService(executor, reportRepo, runLock, logger)
	ggAuth := auth2.NewGoogleAuthService(studentPort, jwtProvider, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(studentPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(gradingSvc, ggAuth, localAuth)

	// server
	middleware := handlers.New(sysCfg.JwtConfig.Secret)
	httpServer := http2.NewServer(getIntEnv("HTTP_PORT", 8082), "cgrader", *serviceProvider, middleware, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// getIntEnv gets an environment variable as an integer with a fallback
func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
