package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"household-backend/pkg/ai"

	"github.com/google/uuid"
)

// FallbackReply is shown when the assistant cannot be reached.
const FallbackReply = "Sorry, I couldn't connect to the AI."

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrEmptyMessage    = errors.New("message is required")
)

// Message is one entry of a conversation.
type Message struct {
	ID        string  `json:"id"`
	Role      ai.Role `json:"role"`
	Text      string  `json:"text"`
	Timestamp int64   `json:"timestamp"` // Unix milliseconds
}

// Chatter is the part of ai.Gateway the assistant uses.
type Chatter interface {
	Chat(ctx context.Context, history []ai.Turn, message string) (string, error)
}

// Service keeps conversations in memory. They are lost on restart.
type Service struct {
	chatter Chatter
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string][]Message
}

func NewService(chatter Chatter) *Service {
	return &Service{
		chatter:  chatter,
		now:      time.Now,
		sessions: make(map[string][]Message),
	}
}

// Start opens an empty conversation.
func (s *Service) Start() string {
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = []Message{}
	s.mu.Unlock()
	return id
}

// Messages returns a copy of the conversation.
func (s *Service) Messages(sessionID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return append([]Message(nil), msgs...), nil
}

// Send appends the user's text, asks the assistant with the prior
// conversation as history, and appends the reply. When the assistant
// fails the fixed apology is appended instead.
func (s *Service) Send(ctx context.Context, sessionID, text string) (Message, []Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, nil, ErrEmptyMessage
	}

	user := s.newMessage(ai.RoleUser, text)

	s.mu.Lock()
	prior, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return Message{}, nil, ErrSessionNotFound
	}
	history := make([]ai.Turn, 0, len(prior))
	for _, m := range prior {
		history = append(history, ai.Turn{Role: m.Role, Text: m.Text})
	}
	s.sessions[sessionID] = append(prior, user)
	s.mu.Unlock()

	replyText, err := s.chatter.Chat(ctx, history, text)
	if err != nil {
		var cerr *ai.ChatError
		if !errors.As(err, &cerr) {
			log.Printf("[Chat] Unexpected error: %v", err)
		} else {
			log.Printf("[Chat] Assistant unavailable: %v", err)
		}
		replyText = FallbackReply
	}
	reply := s.newMessage(ai.RoleModel, replyText)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], reply)
	return reply, append([]Message(nil), s.sessions[sessionID]...), nil
}

func (s *Service) newMessage(role ai.Role, text string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	}
}
