package domain

import "errors"

// ErrEmptyInstruction is returned when the admin submits blank text.
var ErrEmptyInstruction = errors.New("instruction is required")

// SpecialTask is an ad-hoc instruction shown until the helper completes it.
// Completion is permanent and tasks are never deleted.
type SpecialTask struct {
	ID          string `json:"id"`
	ContentZh   string `json:"content_zh"`
	ContentEn   string `json:"content_en"`
	ContentID   string `json:"content_id"`
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   int64  `json:"created_at"` // Unix milliseconds
}
