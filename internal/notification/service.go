package notification

import (
	"context"
	"errors"
	"log"
	"strings"

	"household-backend/internal/specialtask/domain"
	"household-backend/pkg/fcm"
)

// ErrEmptyToken is returned when a device registers without a token.
var ErrEmptyToken = errors.New("token is required")

// Sender pushes one notification to many devices and returns the tokens
// that were rejected.
type Sender interface {
	SendToDevices(ctx context.Context, tokens []string, notification fcm.NotificationData) ([]string, error)
}

// Service notifies helper devices about new special tasks
type Service struct {
	tokens DeviceTokenRepository
	sender Sender
}

// NewService creates a notifier. A nil sender disables pushes.
func NewService(tokens DeviceTokenRepository, sender Sender) *Service {
	return &Service{tokens: tokens, sender: sender}
}

// Enabled reports whether pushes are sent.
func (s *Service) Enabled() bool {
	return s.sender != nil
}

// RegisterDevice stores a device token
func (s *Service) RegisterDevice(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	return s.tokens.SaveToken(ctx, token)
}

// NotifySpecialTask sends the new task to every registered device and
// forgets tokens FCM rejected.
func (s *Service) NotifySpecialTask(ctx context.Context, task domain.SpecialTask) error {
	if s.sender == nil {
		return nil
	}

	tokens, err := s.tokens.Tokens(ctx)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		log.Printf("[FCM] No devices registered, skipping notification for %s", task.ID)
		return nil
	}

	failed, err := s.sender.SendToDevices(ctx, tokens, fcm.NotificationData{
		Title: "⚠️ " + task.ContentZh,
		Body:  task.ContentID + "\n" + task.ContentEn,
		Data: map[string]string{
			"type":            "special_task",
			"special_task_id": task.ID,
		},
	})
	if err != nil {
		return err
	}

	if len(failed) > 0 {
		log.Printf("[FCM] Removing %d stale device tokens", len(failed))
		if err := s.tokens.DeleteTokens(ctx, failed); err != nil {
			log.Printf("[FCM] Failed to remove stale tokens: %v", err)
		}
	}
	return nil
}
