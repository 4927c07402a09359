package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/quiz-night/backend/internal/bank"
	"github.com/quiz-night/backend/internal/config"
	"github.com/quiz-night/backend/internal/middleware"
	"github.com/quiz-night/backend/internal/quiz"
	"github.com/quiz-night/backend/internal/session"
)

func main() {
	cfg := config.Load()

	registry := bank.NewRegistry(cfg.DataDir)
	store := session.NewStore(cfg.SessionTTL)
	store.StartJanitor(10*time.Minute, nil)

	service := quiz.NewService(registry, cfg.RandomizeOrder)
	handler := quiz.NewHandler(service)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Sessions(store, cfg.SecretKey, cfg.SessionTTL))
	handler.Routes(api)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Overlay and quiz pages are plain static assets
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	srv := middleware.Logger(c.Handler(r))

	log.Printf("Server starting on :%s (data dir %s, randomize=%v)", cfg.Port, cfg.DataDir, cfg.RandomizeOrder)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
