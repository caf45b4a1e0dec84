package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"time-management.com/time-management/internal/bootstrap"
	"time-management.com/time-management/internal/cache"
	config "time-management.com/time-management/internal/configs"
	httpapi "time-management.com/time-management/internal/http"
	repository "time-management.com/time-management/internal/repositories"
	"time-management.com/time-management/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Provisions baseline data and starts the time management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		if redisClient != nil {
			defer redisClient.Close()
		}

		if err := bootstrap.Provision(context.Background(), database, cfg.SeedDemoUsers); err != nil {
			log.Fatalf("provisioning failed: %v", err)
		}

		taskRepo := repository.NewTaskRepository(database)
		tagRepo := repository.NewTagRepository(database)
		userRepo := repository.NewUserRepository(database)

		tagCatalogue := cache.NewTagCatalogue(redisClient, time.Duration(cfg.TagCacheTTLSeconds)*time.Second)

		userService := services.NewUserService(userRepo)
		tagService := services.NewTagService(tagRepo, tagCatalogue)
		taskService := services.NewTaskService(taskRepo, userService, tagService)
		authService := services.NewAuthService(
			userRepo, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience,
			time.Duration(cfg.TokenTTLMinutes)*time.Minute,
		)

		e := echo.New()

		handler := httpapi.NewHandler(taskService, tagService, authService, userService)
		httpapi.Register(e, handler, authService, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
