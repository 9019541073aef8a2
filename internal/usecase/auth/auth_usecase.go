package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/gamification"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// AuthUseCase is the host's "current user" boundary: it turns a known user id
// into a bearer token and resolves tokens back to users. The engine itself
// has no credentials; identity verification belongs to the host application.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtSecret string, tokenExpiryMin int) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: time.Duration(tokenExpiryMin) * time.Minute,
	}
}

// LoginResult carries a signed token and the user it belongs to.
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// Login issues a token for an existing user.
func (uc *AuthUseCase) Login(ctx context.Context, userID int) (*LoginResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

// SignupRequest is the minimal data needed to create an account.
type SignupRequest struct {
	Name string `json:"name" binding:"required"`
	Bio  string `json:"bio"`
}

// Signup creates a new user with the baseline progression state and logs
// them in.
func (uc *AuthUseCase) Signup(ctx context.Context, req *SignupRequest) (*LoginResult, error) {
	user := &domain.User{
		Name:   req.Name,
		Bio:    req.Bio,
		Level:  1,
		Badges: []string{"Newbie"},
	}
	user.Badges = gamification.RecomputeBadges(user)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return uc.issueToken(user)
}

func (uc *AuthUseCase) issueToken(user *domain.User) (*LoginResult, error) {
	expiresAt := time.Now().Add(uc.tokenExpiry)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResult{
		Token:     signed,
		ExpiresAt: expiresAt.Unix(),
		User:      user,
	}, nil
}

// ValidateToken parses a bearer token and returns the user id it identifies.
func (uc *AuthUseCase) ValidateToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("missing user_id claim")
	}
	return int(userID), nil
}

// CurrentUser resolves the user behind a validated id.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID int) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
