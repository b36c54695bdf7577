package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	if os.Getenv("MONGO_URI") == "" && os.Getenv("GO_ENV") != "test" {
		log.Fatal("Required environment variable MONGO_URI is not set")
	}

	utils.InitValidator()
}

func setupRouter(store repository.TodoStore) *gin.Engine {
	router := gin.New()
	if os.Getenv("GO_ENV") != "test" {
		router.Use(gin.Logger())
	}
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodySize))

	todoService := usecase.NewTodoService(store)
	todoHandler := handler.NewTodoHandler(todoService)

	router.GET("/", handler.WelcomeHandler)
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	todos := router.Group("/todos")
	{
		todos.GET("/", todoHandler.GetTodos)
		todos.POST("/", todoHandler.CreateTodo)
		todos.GET("/:id", todoHandler.GetTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}

	return router
}

func main() {
	ctx := context.Background()

	client, err := utils.NewMongoClient(ctx)
	if err != nil {
		log.Fatalf("MongoDB init: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Printf("MongoDB disconnect: %v", err)
		}
	}()

	router := setupRouter(repository.GetTodoRepo(client))

	server := &http.Server{
		Addr:    ":" + utils.GetEnvAsString("PORT", "8000"),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
