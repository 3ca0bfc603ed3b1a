// ABOUTME: Session modes, transcript roles, and the endpoint chosen for each exchange
// ABOUTME: Endpoint selection is a pure function of mode and the one-shot flag

package session

// Mode is the active conversational protocol.
type Mode int

const (
	// ModeUnset means no begin action has happened yet.
	ModeUnset Mode = iota
	// ModeConversational allows unlimited back-and-forth messages.
	ModeConversational
	// ModeFullPrompt accepts exactly one user message.
	ModeFullPrompt
)

// String returns the human-readable label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeUnset:
		return "none"
	case ModeConversational:
		return "conversational"
	case ModeFullPrompt:
		return "full prompt"
	default:
		return "unknown"
	}
}

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is one transcript entry. Failed marks the generic error message
// appended when a request could not complete.
type Message struct {
	Role   Role
	Text   string
	Failed bool
}

// Endpoint identifies the backend operation an exchange dispatches to.
type Endpoint int

const (
	EndpointStartConversational Endpoint = iota
	EndpointChat
	EndpointStartFullPrompt
	EndpointContinueFullPrompt
)

func (e Endpoint) String() string {
	switch e {
	case EndpointStartConversational:
		return "start-conversational"
	case EndpointChat:
		return "chat-conversational"
	case EndpointStartFullPrompt:
		return "start-full-prompt"
	case EndpointContinueFullPrompt:
		return "continue-full-prompt"
	default:
		return "unknown"
	}
}

// endpointFor selects the endpoint for a user submission.
// ok is false when the mode accepts no submissions.
func endpointFor(mode Mode, consumed bool) (e Endpoint, ok bool) {
	switch mode {
	case ModeConversational:
		return EndpointChat, true
	case ModeFullPrompt:
		if consumed {
			return EndpointContinueFullPrompt, true
		}
		return EndpointStartFullPrompt, true
	default:
		return 0, false
	}
}
