package auth

import (
	"context"
	"errors"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"github.com/ridwansameer/simple-todo-api/internal/store"
)

var (
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	store *store.Store
	jwt   *JWTService
}

func NewService(st *store.Store, jwt *JWTService) *Service {
	return &Service{store: st, jwt: jwt}
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: &user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.store.UserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(user.ID)
}

func (s *Service) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.store.UserByID(ctx, id)
}
