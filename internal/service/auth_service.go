package service

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/remix-pengkefei/ai-training-admin/internal/model"
	"github.com/remix-pengkefei/ai-training-admin/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionExpired     = errors.New("session expired")
)

// AuthService handles admin login, token validation and logout. A login
// issues a server-side session record plus an HS256 token carrying the
// session ID; the record, not the token, decides validity.
type AuthService struct {
	username  string
	password  string
	jwtSecret []byte
	guard     *session.Guard
}

// NewAuthService creates an auth service over the given guard.
func NewAuthService(username, password, jwtSecret string, guard *session.Guard) *AuthService {
	return &AuthService{
		username:  username,
		password:  password,
		jwtSecret: []byte(jwtSecret),
		guard:     guard,
	}
}

// Login validates the fixed credential pair and opens a session.
// No lockout, no rate limiting; a mismatch changes no state.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	if username != s.username || password != s.password {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	st, err := s.guard.Issue(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	claims := &model.AdminClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(st.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(st.IssuedAt.Add(s.guard.TTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:     tokenString,
		ExpiresAt: st.IssuedAt.Add(s.guard.TTL()),
	}, nil
}

// Authorize validates a token and its backing session, returning the
// session ID. An expired session is cleared by the guard as part of
// the check.
func (s *AuthService) Authorize(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return "", err
	}

	ok, err := s.guard.Authorize(ctx, claims.SessionID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrSessionExpired
	}
	return claims.SessionID, nil
}

// Logout clears the session behind the token. Unknown or malformed
// tokens are not an error; there is simply nothing to clear.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil
	}
	return s.guard.Revoke(ctx, claims.SessionID)
}

func (s *AuthService) parseToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
