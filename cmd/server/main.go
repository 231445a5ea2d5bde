// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"campuscompass/internal/config"
	"campuscompass/internal/handlers"
	"campuscompass/internal/middleware"
	"campuscompass/internal/ratelimit"
	"campuscompass/internal/repository/item"
	"campuscompass/internal/repository/message"
	"campuscompass/internal/services"
	"campuscompass/internal/services/ai"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("campuscompass")

	// --- Repositories ---
	itemRepo := item.NewMemoryItemRepository()
	messageRepo := message.NewMemoryMessageRepository()

	if cfg.SeedDemoData {
		if err := item.SeedDemoItems(context.Background(), itemRepo); err != nil {
			log.Fatalf("FATAL: Failed to seed demo items: %v", err)
		}
	}

	// --- AI provider ---
	aiConfig := ai.DefaultConfig()
	aiConfig.Provider = cfg.AIProvider
	aiConfig.OpenAIKey = cfg.OpenAIAPIKey
	aiConfig.OpenAIBaseURL = cfg.OpenAIBaseURL
	aiConfig.GeminiKey = cfg.GeminiAPIKey
	aiConfig.Model = cfg.ChatModelName

	provider, err := ai.NewProvider(context.Background(), aiConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
	}
	retryService := ai.NewRetryService(aiConfig, logger)

	// --- Services ---
	itemService, err := services.NewItemService(itemRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Item Service: %v", err)
	}
	chatService, err := services.NewChatService(itemRepo, messageRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Service: %v", err)
	}
	matchService, err := services.NewMatchService(itemRepo, provider, retryService, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Match Service: %v", err)
	}
	assistantService, err := services.NewAssistantService(provider, retryService, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Assistant Service: %v", err)
	}

	// --- Handlers ---
	itemHandler := handlers.NewItemHandler(itemService)
	chatHandler := handlers.NewChatHandler(chatService)
	matchHandler := handlers.NewMatchHandler(matchService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
	r.HandleFunc("/api/log", handlers.LogFrontendEvent).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/items", itemHandler.ListItems).Methods("GET")
	api.HandleFunc("/items", itemHandler.ReportItem).Methods("POST")
	api.HandleFunc("/items/{id}", itemHandler.GetItem).Methods("GET")
	api.HandleFunc("/items/{id}/found", itemHandler.MarkAsFound).Methods("POST")
	api.HandleFunc("/items/{id}", itemHandler.ClaimItem).Methods("DELETE")
	api.HandleFunc("/items/{id}/chat", chatHandler.GetChatData).Methods("GET")
	api.HandleFunc("/chat/messages", chatHandler.SendMessage).Methods("POST")

	// The AI endpoints spend provider quota, so they sit behind the
	// rate limiter.
	aiLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAIConfig())
	defer aiLimiter.Close()
	aiRoutes := r.PathPrefix("/api").Subrouter()
	aiRoutes.Use(middleware.RateLimitMiddleware(aiLimiter, "ai"))
	aiRoutes.HandleFunc("/items/{id}/matches", matchHandler.FindMatches).Methods("GET")
	aiRoutes.HandleFunc("/assistant", assistantHandler.Ask).Methods("POST")

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("==================================================")
	log.Printf("🧭 Campus Compass - Lost & Found")
	log.Printf("==================================================")
	log.Printf("🚀 Server starting on port %s", port)
	log.Printf("🌐 Local access: http://localhost%s", port)
	log.Printf("🤖 AI provider: %s (%s)", cfg.AIProvider, cfg.ChatModelName)
	log.Printf("==================================================")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("🛑 Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server shutdown failed: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
