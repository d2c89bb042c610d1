package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/entity"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/repository"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/helpers"
)

var (
	ErrMissingCredentials   = errors.New("username and password are required")
	ErrDuplicateUsername    = errors.New("a user with that username already exists")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// AuthService owns signup and signin. Password hashing and comparison are
// delegated to bcrypt; token issuing to the JWT manager.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Signup creates a new user with a hashed password. Username uniqueness is
// enforced by the store; a violation comes back as ErrDuplicateUsername.
func (s *AuthService) Signup(ctx context.Context, name, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u := &entity.User{Name: name, Username: username, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrDuplicateUsername
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("username", username).Info("user created")
	}
	return nil
}

// Signin verifies the credentials and returns a signed token embedding the
// user's id and username. An unknown username and a bad password are
// indistinguishable to the caller.
func (s *AuthService) Signin(ctx context.Context, username, password string) (string, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrAuthenticationFailed
		}
		return "", err
	}
	if !helpers.ComparePassword(u.Password, password) {
		return "", ErrAuthenticationFailed
	}
	token, _, err := s.JWT.GenerateToken(u.ID.Hex(), u.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}
