package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"

	"github.com/tripbuddy/tripbuddy-agent/internal/agent"
	"github.com/tripbuddy/tripbuddy-agent/internal/config"
	"github.com/tripbuddy/tripbuddy-agent/internal/llm"
	"github.com/tripbuddy/tripbuddy-agent/internal/models"
)

// Interactive terminal chat against the turn pipeline. The loop owns the
// transcript: it appends the user turn, runs the pipeline on the serialized
// history, and appends exactly one agent turn per submitted message.
func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.LLMAPIKey == "" && cfg.LLMProvider != llm.ProviderMock {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()

	guardProvider, err := llm.NewProvider(ctx, cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.GuardModel, cfg.LLMTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize guard provider: %v", err)
	}
	responderProvider, err := llm.NewProvider(ctx, cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.ResponderModel, cfg.LLMTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize responder provider: %v", err)
	}

	pipeline := agent.NewPipeline(
		agent.NewInputGate(guardProvider),
		agent.NewResponder(responderProvider),
		agent.NewOutputGate(guardProvider),
	)

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	profile := &cfg.Profile
	printProfile(profile)

	fmt.Println("Chat with your AI travel agent. Type 'exit' to quit.")
	fmt.Println()

	transcript := &models.Transcript{}
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		transcript.Append(models.RoleUser, input)

		fmt.Println("Agent is thinking...")

		turnCtx, cancel := context.WithTimeout(ctx, 3*cfg.LLMTimeout)
		outcome, err := pipeline.Process(turnCtx, transcript.Prompt(), profile)
		cancel()
		if err != nil {
			// Provider failure kills the turn; no agent turn is recorded.
			fmt.Printf("Turn failed: %v\n\n", err)
			continue
		}

		reply := outcome.UserMessage()
		transcript.Append(models.RoleAgent, reply)

		if outcome.Status == models.StatusSuccess {
			rendered, err := renderer.Render(reply)
			if err != nil {
				fmt.Printf("Agent: %s\n\n", reply)
				continue
			}
			fmt.Printf("Agent:%s\n", rendered)
		} else {
			fmt.Printf("Agent: %s\n\n", reply)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("Input error: %v", err)
	}

	fmt.Println("Goodbye!")
}

func printProfile(profile *models.UserProfile) {
	fmt.Println("✈️  TripBuddy — Travel Booking Assistant")
	fmt.Println()
	fmt.Println("Traveler profile:")
	fmt.Printf("  Name:           %s\n", profile.Name)
	fmt.Printf("  Age:            %d\n", profile.Age)
	fmt.Printf("  Departure city: %s\n", profile.DepartureCity)
	fmt.Printf("  Budget:         $%.1f\n", profile.Budget)
	fmt.Println("  Travel history:")
	for _, country := range profile.TravelHistory {
		fmt.Printf("    - %s\n", country)
	}
	fmt.Println()
}
