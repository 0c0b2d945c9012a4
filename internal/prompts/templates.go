package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
)

const InputGateInstructions = `You are an input guardrail for a travel booking assistant. Inspect the conversation below and decide whether the latest user request is:
- asking to book travel to an illegal, unsafe, or restricted destination,
- OR clearly irrelevant to travel booking, or offensive.`

const OutputGateInstructions = `You are an output guardrail for a travel booking assistant. Inspect the assistant's candidate reply below and decide whether it:
- gives medical or legal advice,
- OR confirms a booking without disclosing the cost.`

const gatePromptTemplate = `%s

Traveler profile:
%s
RESPONSE FORMAT:
You must respond with a valid JSON object in this exact format:
{
  "triggered": true or false,
  "reasoning": "short explanation"
}

Text to inspect:
%s

Respond with the JSON object only.`

const responderPromptTemplate = `You are a travel booking assistant. Help the user find and summarize flight & hotel options, explain costs clearly, and guide them through booking steps. Maintain context from the entire conversation history provided.

Traveler profile:
%s
RESPONSE FORMAT:
You must respond with a valid JSON object in this exact format:
{
  "response": "your reply to the user"
}

Current conversation:
%s

Respond with the JSON object only.`

const FallbackMessage = "I'm sorry, I encountered an error processing your request. Please try again."

// BuildGatePrompt assembles a classifier prompt from the gate's policy
// instructions, the shared traveler profile, and the text under inspection.
func BuildGatePrompt(instructions string, profile *models.UserProfile, text string) string {
	return fmt.Sprintf(gatePromptTemplate, instructions, FormatProfile(profile), text)
}

// BuildResponderPrompt assembles the travel assistant prompt from the shared
// traveler profile and the serialized conversation.
func BuildResponderPrompt(profile *models.UserProfile, conversation string) string {
	return fmt.Sprintf(responderPromptTemplate, FormatProfile(profile), conversation)
}

// FormatProfile renders the traveler profile as the context block injected
// into every prompt.
func FormatProfile(profile *models.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- Departure city: %s\n", profile.DepartureCity)
	fmt.Fprintf(&b, "- Budget: $%.2f\n", profile.Budget)
	fmt.Fprintf(&b, "- Travel history: %s\n", strings.Join(profile.TravelHistory, ", "))
	return b.String()
}

// ParseGateVerdict decodes a gate classifier reply into a verdict. The
// provider promises a {bool, string} JSON object; anything else is a
// malformed reply and comes back as an error.
func ParseGateVerdict(content string) (*models.GateVerdict, error) {
	jsonContent := extractJSON(content)
	if jsonContent == "" {
		return nil, fmt.Errorf("no valid JSON found in gate response")
	}

	var verdict models.GateVerdict
	if err := json.Unmarshal([]byte(jsonContent), &verdict); err != nil {
		return nil, fmt.Errorf("failed to parse gate verdict: %w", err)
	}

	return &verdict, nil
}

// ParseResponderReply decodes the responder's structured reply and returns
// the reply text.
func ParseResponderReply(content string) (string, error) {
	jsonContent := extractJSON(content)
	if jsonContent == "" {
		return "", fmt.Errorf("no valid JSON found in responder reply")
	}

	var reply struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal([]byte(jsonContent), &reply); err != nil {
		return "", fmt.Errorf("failed to parse responder reply: %w", err)
	}

	if reply.Response == "" {
		return "", fmt.Errorf("responder reply missing response field")
	}

	return reply.Response, nil
}

func extractJSON(content string) string {
	// Look for JSON object in the content
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(content, "}")
	if end == -1 || end <= start {
		return ""
	}

	return content[start : end+1]
}
