package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelagency/internal/cache"
	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	router "travelagency/internal/http"
	"travelagency/internal/http/handlers"
	"travelagency/internal/queue"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(db); err != nil {
		log.Fatalf("Gagal menyiapkan skema database: %v", err)
	}

	redisClient := intconfig.NewRedisClient(env)
	if redisClient != nil {
		defer redisClient.Close()
	}

	deps := handlers.API{
		DB:        db,
		Cache:     cache.NewTripCache(redisClient, env.TripCacheTTL),
		Publisher: queue.NewPublisher(env.RabbitMQURL),
		JWTSecret: []byte(env.JWTSecret),
		JWTTTL:    env.JWTTTL,
	}

	// Router (Gin engine)
	r := router.NewRouter(env, deps)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
