package ai

import "fmt"

// TranslationError reports a failed or malformed translation call.
type TranslationError struct {
	Provider string
	Err      error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s translate: %v", e.Provider, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// ChatError reports a failed chat call.
type ChatError struct {
	Provider string
	Err      error
}

func (e *ChatError) Error() string {
	return fmt.Sprintf("%s chat: %v", e.Provider, e.Err)
}

func (e *ChatError) Unwrap() error { return e.Err }

// ImageGenError reports a failed image generation call.
type ImageGenError struct {
	Provider string
	Err      error
}

func (e *ImageGenError) Error() string {
	return fmt.Sprintf("%s image: %v", e.Provider, e.Err)
}

func (e *ImageGenError) Unwrap() error { return e.Err }
