package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zunde-outreach/checkin-api/internal/pkg/jwthelper"
)

const RoleStaff = "staff"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

type StaffCredentials struct {
	Email string
	// Password is hashed on construction when PasswordHash is empty.
	Password     string
	PasswordHash string
}

type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// AuthService authenticates the single configured staff account.
type AuthService struct {
	email        string
	passwordHash []byte
	signingKey   string
	ttl          time.Duration
}

func NewAuthService(creds StaffCredentials, signingKey string, ttl time.Duration) (*AuthService, error) {
	hash := creds.PasswordHash
	if hash == "" {
		var err error
		hash, err = hashPassword(creds.Password)
		if err != nil {
			return nil, fmt.Errorf("hashPassword -> %w", err)
		}
	}

	return &AuthService{
		email:        strings.ToLower(strings.TrimSpace(creds.Email)),
		passwordHash: []byte(hash),
		signingKey:   signingKey,
		ttl:          ttl,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Token, error) {
	if err := ctx.Err(); err != nil {
		return Token{}, err
	}

	// The hash is compared even for an unknown email so both failures take as long.
	pwErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if strings.ToLower(strings.TrimSpace(email)) != s.email {
		return Token{}, ErrUserNotFound
	}
	if pwErr != nil {
		return Token{}, ErrWrongPassword
	}

	accessToken, expiresAt, err := jwthelper.GenerateToken(s.signingKey, s.email, RoleStaff, s.ttl)
	if err != nil {
		return Token{}, fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return Token{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
