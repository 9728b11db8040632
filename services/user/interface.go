package user

import (
	userRepo "opdflow/database/repository/user"
	"opdflow/models"
)

// UserService manages account registration, session tokens and the FCM push
// token attached to each account.
type UserService interface {
	Register(in models.UserRegistration) (*models.AuthResponse, error)
	Authenticate(in models.UserCredentials) (*models.AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateFCMToken(userID, token string) error
	Logout(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
