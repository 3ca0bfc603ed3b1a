// ABOUTME: Chat session controller: mode state machine, one-shot full prompt, ordered transcript
// ABOUTME: Requests are split into a synchronous Prepare step and a blocking Exchange.Run

package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mauromedda/sda-go/internal/eventbus"
	"github.com/mauromedda/sda-go/internal/log"
)

// Transcript texts produced by the controller itself.
const (
	GenericErrorText = "Sorry, something went wrong talking to the agent. Please try again."
	NoReplyText      = "(no reply)"
	FullPromptIntro  = "Full prompt mode: describe the whole task in a single message. " +
		"Only one message is accepted; begin a new session to send another."
)

// Reasons a submission or begin action was ignored. None of them changes state.
var (
	ErrEmptyMessage   = errors.New("session: empty message")
	ErrNotStarted     = errors.New("session: no mode selected")
	ErrPromptConsumed = errors.New("session: full prompt already used")
	ErrBusy           = errors.New("session: a request is already pending")
	ErrExchangeDone   = errors.New("session: exchange already run")
)

// Backend is the agent service as seen by the session.
type Backend interface {
	StartConversational(ctx context.Context) (string, error)
	ChatConversational(ctx context.Context, message string) (string, error)
	StartFullPrompt(ctx context.Context, message string) (string, error)
	ContinueFullPrompt(ctx context.Context, message string) (string, error)
}

// RoundSettled is published after every exchange, successful or not.
type RoundSettled struct {
	Endpoint Endpoint
	Mode     Mode
	Err      error
}

// State is a point-in-time copy of the controller state.
type State struct {
	Mode Mode
	// Degraded is set when the conversational start request failed; the mode
	// is still conversational so the user can retry by sending a message.
	Degraded   bool
	Consumed   bool
	Pending    bool
	Transcript []Message
}

// Controller owns the session mode and the transcript.
// All methods are safe for concurrent use.
type Controller struct {
	backend Backend
	rounds  *eventbus.Bus[RoundSettled]

	mu         sync.Mutex
	mode       Mode
	degraded   bool
	consumed   bool
	pending    bool
	transcript []Message
}

// NewController creates a controller in ModeUnset. rounds may be nil.
func NewController(backend Backend, rounds *eventbus.Bus[RoundSettled]) *Controller {
	return &Controller{backend: backend, rounds: rounds}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Mode:       c.mode,
		Degraded:   c.degraded,
		Consumed:   c.consumed,
		Pending:    c.pending,
		Transcript: append([]Message(nil), c.transcript...),
	}
}

// Transcript returns a copy of the transcript in display order.
func (c *Controller) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.transcript...)
}

// BeginConversational starts a new conversational run and waits for the greeting.
func (c *Controller) BeginConversational(ctx context.Context) error {
	x, err := c.OpenConversational()
	if err != nil {
		return err
	}
	return x.Run(ctx)
}

// OpenConversational resets the session for a conversational run and returns
// the start exchange. The transcript is cleared: a begin starts a new run.
func (c *Controller) OpenConversational() (*Exchange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return nil, ErrBusy
	}
	c.transcript = nil
	c.consumed = false
	c.degraded = false
	c.pending = true
	return &Exchange{c: c, endpoint: EndpointStartConversational}, nil
}

// BeginFullPrompt switches to full-prompt mode without contacting the backend.
func (c *Controller) BeginFullPrompt() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return ErrBusy
	}
	c.transcript = []Message{{Role: RoleAgent, Text: FullPromptIntro}}
	c.mode = ModeFullPrompt
	c.consumed = false
	c.degraded = false
	return nil
}

// Submit sends text to the endpoint selected by the current mode and waits
// for the reply. Ignored submissions return one of the sentinel errors and
// leave the transcript untouched; request failures are appended to the
// transcript and also returned.
func (c *Controller) Submit(ctx context.Context, text string) error {
	x, err := c.Prepare(text)
	if err != nil {
		return err
	}
	return x.Run(ctx)
}

// Prepare validates a submission, appends the user message, marks the
// session pending and fixes the endpoint. The returned exchange must be Run.
func (c *Controller) Prepare(text string) (*Exchange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.acceptErr(); err != nil {
		return nil, err
	}

	endpoint, _ := endpointFor(c.mode, c.consumed)
	c.transcript = append(c.transcript, Message{Role: RoleUser, Text: text})
	c.pending = true
	return &Exchange{c: c, endpoint: endpoint, text: text}, nil
}

// acceptErr explains why a submission would be ignored. Caller holds mu.
func (c *Controller) acceptErr() error {
	switch {
	case c.pending:
		return ErrBusy
	case c.mode == ModeUnset:
		return ErrNotStarted
	case c.mode == ModeFullPrompt && c.consumed:
		return ErrPromptConsumed
	}
	return nil
}

// settle records the outcome of an exchange and publishes RoundSettled.
func (c *Controller) settle(x *Exchange, reply string, err error) {
	c.mu.Lock()
	switch x.endpoint {
	case EndpointStartConversational:
		c.mode = ModeConversational
		c.degraded = err != nil
	case EndpointChat:
		if err == nil {
			c.degraded = false
		}
	case EndpointStartFullPrompt, EndpointContinueFullPrompt:
		c.consumed = true
	}

	if err != nil {
		c.transcript = append(c.transcript, Message{Role: RoleAgent, Text: GenericErrorText, Failed: true})
	} else {
		if strings.TrimSpace(reply) == "" {
			reply = NoReplyText
		}
		c.transcript = append(c.transcript, Message{Role: RoleAgent, Text: reply})
	}
	c.pending = false
	mode := c.mode
	c.mu.Unlock()

	if err != nil {
		log.Warn("session: %s failed: %v", x.endpoint, err)
	}
	c.rounds.Publish(RoundSettled{Endpoint: x.endpoint, Mode: mode, Err: err})
}

// Exchange is one chat request whose endpoint was fixed at Prepare time.
type Exchange struct {
	c        *Controller
	endpoint Endpoint
	text     string
	done     atomic.Bool
}

// Endpoint returns the backend operation this exchange dispatches to.
func (x *Exchange) Endpoint() Endpoint { return x.endpoint }

// Run performs the request and settles the session. It returns the request
// error, if any, after the failure has been recorded in the transcript.
func (x *Exchange) Run(ctx context.Context) error {
	if !x.done.CompareAndSwap(false, true) {
		return ErrExchangeDone
	}

	var (
		reply string
		err   error
		b     = x.c.backend
	)
	switch x.endpoint {
	case EndpointStartConversational:
		reply, err = b.StartConversational(ctx)
	case EndpointChat:
		reply, err = b.ChatConversational(ctx, x.text)
	case EndpointStartFullPrompt:
		reply, err = b.StartFullPrompt(ctx, x.text)
	case EndpointContinueFullPrompt:
		reply, err = b.ContinueFullPrompt(ctx, x.text)
	}

	x.c.settle(x, reply, err)
	return err
}
