package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tripbuddy/tripbuddy-agent/internal/agent"
	"github.com/tripbuddy/tripbuddy-agent/internal/config"
	"github.com/tripbuddy/tripbuddy-agent/internal/handlers"
	"github.com/tripbuddy/tripbuddy-agent/internal/llm"
	"github.com/tripbuddy/tripbuddy-agent/internal/session"
	"github.com/tripbuddy/tripbuddy-agent/internal/transport"
)

func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("🚀 Starting TripBuddy Agent Service...")

	// Load configuration
	cfg := config.Load()
	log.Printf("📋 Service: %s", cfg.ServiceName)
	log.Printf("📡 NATS URL: %s", cfg.NatsURL)
	log.Printf("🤖 LLM provider: %s (responder=%s, guard=%s)", cfg.LLMProvider, cfg.ResponderModel, cfg.GuardModel)

	// Validate required configuration
	if cfg.LLMAPIKey == "" && cfg.LLMProvider != llm.ProviderMock {
		log.Fatal("❌ GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()

	// Initialize the two model tiers: a cheaper one shared by both gates,
	// a more capable one for the responder.
	guardProvider, err := llm.NewProvider(ctx, cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.GuardModel, cfg.LLMTimeout)
	if err != nil {
		log.Fatalf("❌ Failed to initialize guard provider: %v", err)
	}
	responderProvider, err := llm.NewProvider(ctx, cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.ResponderModel, cfg.LLMTimeout)
	if err != nil {
		log.Fatalf("❌ Failed to initialize responder provider: %v", err)
	}
	log.Println("✅ LLM providers initialized")

	// Build the turn pipeline
	pipeline := agent.NewPipeline(
		agent.NewInputGate(guardProvider),
		agent.NewResponder(responderProvider),
		agent.NewOutputGate(guardProvider),
	)
	log.Println("✅ Turn pipeline initialized")

	// Initialize session manager
	sessions := session.NewManager(session.NewMemoryStore())
	defer sessions.Close()
	log.Println("✅ Session manager initialized")

	// Initialize chat handler
	chatHandler := handlers.NewChatHandler(pipeline, sessions, &cfg.Profile)
	log.Println("✅ Chat handler initialized")

	// Initialize NATS transport
	log.Println("📡 Connecting to NATS...")
	natsTransport, err := transport.NewNATSTransport(cfg, chatHandler)
	if err != nil {
		log.Fatalf("❌ Failed to initialize NATS transport: %v", err)
	}
	defer natsTransport.Close()

	// Start listening for requests
	if err := natsTransport.Start(); err != nil {
		log.Fatalf("❌ Failed to start NATS transport: %v", err)
	}

	log.Println("✅ TripBuddy Agent Service is running!")
	log.Printf("👂 Listening on subject: %s", cfg.NatsRequestSubject)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Block until signal received
	sig := <-sigChan
	log.Printf("🛑 Received signal: %v", sig)
	log.Println("🔄 Shutting down gracefully...")

	log.Printf("📊 Final session count: %d", sessions.ActiveSessionCount())

	if err := natsTransport.Close(); err != nil {
		log.Printf("⚠️ Error closing NATS transport: %v", err)
	}

	log.Println("👋 TripBuddy Agent Service stopped")
}
