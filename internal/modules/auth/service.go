package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/freshbasket/freshbasket-backend/internal/simulate"
	"golang.org/x/crypto/bcrypt"
)

// Demo account the storefront ships with. The password is bcrypt-hashed at
// construction so the login path exercises the same comparison a real user
// table would.
var seedUser = User{
	ID:    "1",
	Email: "test@test.com",
	Name:  "Dexter",
	Phone: "012345678910",
}

const seedPassword = "123456"

const tokenTTL = 24 * time.Hour

// Service defines the authentication operations.
type Service interface {
	// Login checks credentials against the seeded account, issues a JWT,
	// and stores the session.
	Login(ctx context.Context, creds Credentials) (*Session, error)

	// Logout clears the session.
	Logout(ctx context.Context) error

	// ValidateToken reports whether token is a well-formed, unexpired JWT
	// signed with this service's secret.
	ValidateToken(ctx context.Context, token string) (bool, error)
}

type service struct {
	store        *Store
	secret       []byte
	passwordHash []byte
	delay        time.Duration
}

// NewService creates the auth service. Logout and token validation are
// lighter calls and use half the base latency.
func NewService(store *Store, secret []byte, delay time.Duration) Service {
	// GenerateFromPassword cannot fail with DefaultCost.
	hash, _ := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	return &service{store: store, secret: secret, passwordHash: hash, delay: delay}
}

func (s *service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	if creds.Email != seedUser.Email ||
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(creds.Password)) != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := s.issueToken(seedUser.ID)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetAuth(ctx, seedUser, token); err != nil {
		return nil, err
	}
	sess := s.store.Session()
	return &sess, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := simulate.Delay(ctx, s.delay/2); err != nil {
		return err
	}
	return s.store.ClearAuth(ctx)
}

func (s *service) ValidateToken(ctx context.Context, tokenString string) (bool, error) {
	if err := simulate.Delay(ctx, s.delay/2); err != nil {
		return false, err
	}
	token, err := parseToken(tokenString, s.secret)
	return err == nil && token.Valid, nil
}

func (s *service) issueToken(userID string) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   userID,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func parseToken(tokenString string, secret []byte) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
}
