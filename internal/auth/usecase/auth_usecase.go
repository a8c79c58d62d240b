package usecase

import (
	"crypto/rand"
	"fmt"
	"log"
	"time"

	authdomain "household-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUsecase gates the admin panel behind a PIN
type AuthUsecase interface {
	// Unlock exchanges the PIN for a session token
	Unlock(pin string) (*authdomain.AdminSession, error)

	// ValidateToken checks a token issued by Unlock in this process
	ValidateToken(token string) error
}

// authUsecase implements AuthUsecase interface. The signing secret lives
// only in memory, so a restart locks the panel again.
type authUsecase struct {
	pinHash []byte
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(pin string, ttl time.Duration) (AuthUsecase, error) {
	return newAuthUsecase(pin, ttl, time.Now)
}

func newAuthUsecase(pin string, ttl time.Duration, now func() time.Time) (*authUsecase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin PIN: %w", err)
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	return &authUsecase{pinHash: hash, secret: secret, ttl: ttl, now: now}, nil
}

func (u *authUsecase) Unlock(pin string) (*authdomain.AdminSession, error) {
	if err := bcrypt.CompareHashAndPassword(u.pinHash, []byte(pin)); err != nil {
		log.Println("[Auth] Admin unlock rejected")
		return nil, authdomain.ErrInvalidPIN
	}

	issued := u.now()
	expires := issued.Add(u.ttl)
	claims := jwt.MapClaims{
		"sub":   "admin",
		"jti":   uuid.New().String(),
		"exp":   expires.Unix(),
		"iat":   issued.Unix(),
		"scope": "admin",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return nil, fmt.Errorf("sign admin token: %w", err)
	}

	log.Printf("[Auth] Admin unlocked until %s", expires.Format(time.RFC3339))
	return &authdomain.AdminSession{Token: signed, ExpiresAt: expires}, nil
}

func (u *authUsecase) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(u.now), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return authdomain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["scope"] != "admin" {
		return authdomain.ErrInvalidToken
	}
	return nil
}
