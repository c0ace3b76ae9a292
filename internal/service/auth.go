package service

import (
	"context"
	"errors"

	"github.com/talait/translate-api/internal/crypto"
	"github.com/talait/translate-api/internal/model"
	"github.com/talait/translate-api/internal/repository"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUsernameTaken    = errors.New("username already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("incorrect password")
)

// UserStore is the persistence interface the auth service depends on.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// AuthService handles registration, login and user listing.
type AuthService struct {
	store  UserStore
	tokens *crypto.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, tokens *crypto.TokenManager) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Register creates a new user with a hashed password.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if req.Username == "" {
		return model.UserResponse{}, ErrUsernameRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: crypto.HashPassword(req.Password),
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.UserResponse{}, ErrUsernameTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{ID: user.ID, Username: user.Username}, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.TokenResponse, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrUserNotFound
		}
		return model.TokenResponse{}, err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return model.TokenResponse{}, ErrWrongPassword
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ListUsers returns all users without password hashes.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, model.UserResponse{ID: u.ID, Username: u.Username})
	}

	return resp, nil
}
