package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// AuthService implements signup and login on top of the user repository.
type AuthService struct {
	userRepo repository.UserRepository
}

// SignUpInput carries every field the signup form collects. Only Username and
// Password are persisted; the profile fields are accepted and discarded, which
// is the historical behavior of the signup flow.
type SignUpInput struct {
	Username    string
	Password    string
	Gender      string
	PhoneNumber string
	Email       string
	Name        string
	UserType    string
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, models.NewValidationError("Username and password are required")
	}

	// Only the credentials reach the database.
	user := &models.User{
		Username: in.Username,
		Password: in.Password,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LogIn verifies the credentials and returns the matching user. Passwords are
// compared verbatim against the stored plain text.
func (s *AuthService) LogIn(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if user.Password != password {
		return nil, models.NewInvalidCredentialsError()
	}
	return user, nil
}
