package models

// GateVerdict is the structured reply expected from a gate classifier.
type GateVerdict struct {
	Triggered bool   `json:"triggered"`
	Reasoning string `json:"reasoning"`
}

// Outcome is the terminal result of one pipeline turn. Exactly one of the
// three variants is populated: a delivered reply, a blocked input, or a
// blocked output. Use the constructors below rather than building one by
// hand.
type Outcome struct {
	Status string `json:"status"`
	Reply  string `json:"reply,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Success wraps a reply that cleared both gates.
func Success(reply string) *Outcome {
	return &Outcome{Status: StatusSuccess, Reply: reply}
}

// BlockedInput marks a turn rejected by the input gate before the responder
// ever ran.
func BlockedInput(reason string) *Outcome {
	return &Outcome{Status: StatusBlockedInput, Reason: reason}
}

// BlockedOutput marks a turn whose candidate reply was rejected by the
// output gate. The candidate text is discarded, only the reason survives.
func BlockedOutput(reason string) *Outcome {
	return &Outcome{Status: StatusBlockedOutput, Reason: reason}
}

// UserMessage renders the text shown to the user for this outcome: the
// reply itself on success, or a fixed block notice carrying the gate's
// rationale.
func (o *Outcome) UserMessage() string {
	switch o.Status {
	case StatusBlockedInput:
		return "Request blocked: " + o.Reason
	case StatusBlockedOutput:
		return "Response blocked: " + o.Reason
	default:
		return o.Reply
	}
}
