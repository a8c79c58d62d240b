package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidPIN   = errors.New("invalid PIN")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AdminSession is returned after a successful unlock.
type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
