package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "transtour/internal/config"
	router "transtour/internal/http"
	"transtour/internal/routing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("tidak ada file .env, pakai environment proses")
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	// Routing provider: Google Maps when a key is configured, otherwise the
	// aggregator runs on the haversine fallback alone.
	var provider routing.Provider
	if env.MapsAPIKey != "" {
		p, err := routing.NewGoogleProvider(env.MapsAPIKey)
		if err != nil {
			log.Fatalf("Gagal inisialisasi maps client: %v", err)
		}
		provider = p
	} else {
		log.Println("MAPS_API_KEY kosong, jarak rute dihitung dengan haversine")
	}
	aggregator := routing.NewAggregator(provider, routing.NewRouteCache(env.RedisAddr))

	// Router (Gin engine)
	r := router.NewRouter(env, aggregator)

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
