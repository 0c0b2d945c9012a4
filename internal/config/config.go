package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
)

type Config struct {
	// NATS configuration
	NatsURL            string
	NatsRequestSubject string
	NatsTimeout        time.Duration

	// LLM provider configuration
	LLMProvider    string // "openai" (OpenAI-compatible endpoint), "gemini", "mock"
	LLMAPIKey      string
	LLMBaseURL     string
	ResponderModel string // capable tier, used by the responder
	GuardModel     string // cheaper tier, used by both gates
	LLMTimeout     time.Duration

	// Service configuration
	ServiceName string

	// Traveler profile shared with every model call
	Profile models.UserProfile
}

func Load() *Config {
	return &Config{
		// NATS settings
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsRequestSubject: getEnv("NATS_REQUEST_SUBJECT", "tripbuddy.chat"),
		NatsTimeout:        getDurationEnv("NATS_TIMEOUT", 30*time.Second),

		// LLM settings. The default path reaches Gemini through its
		// OpenAI-compatible endpoint.
		LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
		LLMAPIKey:      getEnv("GEMINI_API_KEY", ""),
		LLMBaseURL:     getEnv("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		ResponderModel: getEnv("RESPONDER_MODEL", "gemini-2.5-flash"),
		GuardModel:     getEnv("GUARD_MODEL", "gemini-2.0-flash"),
		LLMTimeout:     getDurationEnv("LLM_TIMEOUT", 60*time.Second),

		// Service settings
		ServiceName: getEnv("SERVICE_NAME", "tripbuddy-agent"),

		Profile: loadProfile(),
	}
}

func loadProfile() models.UserProfile {
	return models.UserProfile{
		Name:          getEnv("TRAVELER_NAME", "Mark Willson"),
		Age:           getIntEnv("TRAVELER_AGE", 45),
		DepartureCity: getEnv("TRAVELER_CITY", "Tokyo"),
		Budget:        getFloatEnv("TRAVELER_BUDGET", 180.4),
		TravelHistory: getListEnv("TRAVELER_HISTORY", []string{"China", "UAE", "Iran", "India"}),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
