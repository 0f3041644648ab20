package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"playShelfAPI/handlers"
	"playShelfAPI/internal/store"
	"playShelfAPI/middleware"
	"playShelfAPI/services"

	_ "net/http/pprof"
)

var (
	itemStore       store.Store
	gameService     *services.GameService
	sessionService  *services.SessionService
	platformService *services.PlatformService
	friendService   *services.FriendService
	statsService    *services.StatsService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	clerkSecretKey := os.Getenv("CLERK_SECRET_KEY")
	if clerkSecretKey == "" {
		log.Fatal("CLERK_SECRET_KEY environment variable is not set")
	}
	clerk.SetKey(clerkSecretKey)
	log.Println("Clerk initialized successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The Firestore document store is the primary backend; the Postgres
	// backend serves the same collections from a relational schema.
	backend := os.Getenv("STORE_BACKEND")
	switch backend {
	case "", "firestore":
		var err error
		itemStore, err = store.NewFirestoreStore(ctx, "./serviceAccountKey.json")
		if err != nil {
			log.Fatal("Failed to initialize Firestore store:", err)
		}
		log.Println("Using Firestore item store")

	case "postgres":
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			log.Fatal("DATABASE_URL environment variable is not set")
		}

		poolConfig, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			log.Fatal("Failed to parse database URL:", err)
		}

		poolConfig.MaxConns = 25
		poolConfig.MinConns = 5
		poolConfig.MaxConnLifetime = time.Hour
		poolConfig.MaxConnIdleTime = 30 * time.Minute
		poolConfig.HealthCheckPeriod = time.Minute

		dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Fatal("Failed to create connection pool:", err)
		}

		if err := dbPool.Ping(ctx); err != nil {
			log.Fatal("Failed to ping database:", err)
		}

		itemStore = store.NewPostgresStore(dbPool)
		log.Println("Using Postgres item store")

	default:
		log.Fatalf("Unknown STORE_BACKEND %q (want firestore or postgres)", backend)
	}

	gameService = services.NewGameService(itemStore)
	sessionService = services.NewSessionService(itemStore)
	platformService = services.NewPlatformService(itemStore)
	friendService = services.NewFriendService(itemStore)
	statsService = services.NewStatsService(itemStore)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing item store...")
		if err := itemStore.Close(); err != nil {
			log.Printf("Store close error: %v", err)
		}
	}()

	gameHandler := handlers.NewGameHandler(gameService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	platformHandler := handlers.NewPlatformHandler(platformService)
	friendHandler := handlers.NewFriendHandler(friendService)
	statsHandler := handlers.NewStatsHandler(statsService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := itemStore.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "item store unreachable"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "playShelf-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// API V1 — all routes require a Clerk session token
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.ClerkAuthMiddleware)

	api.HandleFunc("/games", gameHandler.GetGames).Methods("GET")
	api.HandleFunc("/games", gameHandler.CreateGame).Methods("POST")
	api.HandleFunc("/games/{id}", gameHandler.UpdateGame).Methods("PATCH")
	api.HandleFunc("/games/{id}/favourite", gameHandler.SetFavourite).Methods("PUT")
	api.HandleFunc("/games/{id}", gameHandler.DeleteGame).Methods("DELETE")

	api.HandleFunc("/sessions", sessionHandler.GetSessions).Methods("GET")
	api.HandleFunc("/sessions", sessionHandler.CreateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}", sessionHandler.DeleteSession).Methods("DELETE")

	api.HandleFunc("/platforms", platformHandler.GetPlatforms).Methods("GET")
	api.HandleFunc("/platforms", platformHandler.CreatePlatform).Methods("POST")

	api.HandleFunc("/friends", friendHandler.GetFriends).Methods("GET")
	api.HandleFunc("/friends", friendHandler.CreateFriend).Methods("POST")

	api.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorilllaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
