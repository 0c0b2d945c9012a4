package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeConstructors(t *testing.T) {
	tests := []struct {
		name       string
		outcome    *Outcome
		wantStatus string
		wantReply  string
		wantReason string
	}{
		{
			name:       "success carries only the reply",
			outcome:    Success("Flights from Tokyo to Seoul start at $120."),
			wantStatus: StatusSuccess,
			wantReply:  "Flights from Tokyo to Seoul start at $120.",
		},
		{
			name:       "blocked input carries only the reason",
			outcome:    BlockedInput("restricted destination"),
			wantStatus: StatusBlockedInput,
			wantReason: "restricted destination",
		},
		{
			name:       "blocked output carries only the reason",
			outcome:    BlockedOutput("missing cost"),
			wantStatus: StatusBlockedOutput,
			wantReason: "missing cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.outcome.Status)
			assert.Equal(t, tt.wantReply, tt.outcome.Reply)
			assert.Equal(t, tt.wantReason, tt.outcome.Reason)
		})
	}
}

func TestOutcomeUserMessage(t *testing.T) {
	assert.Equal(t, "hello there", Success("hello there").UserMessage())
	assert.Equal(t, "Request blocked: off topic", BlockedInput("off topic").UserMessage())
	assert.Equal(t, "Response blocked: legal advice", BlockedOutput("legal advice").UserMessage())
}
