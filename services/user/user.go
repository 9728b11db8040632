package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"opdflow/models"
	"opdflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

func (s *DefaultUserService) issueToken(u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	hash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{"tokenHash": hash}); err != nil {
		return "", fmt.Errorf("failed to persist token hash: %w", err)
	}

	// The cache is an accelerator for session checks; Mongo stays the source
	// of truth, so a cache write failure only costs a lookup later.
	cacheKey := utils.AuthCachePrefix + u.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, hash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache session token",
			zap.String("userID", u.ID), zap.Error(err))
	}
	return token, nil
}

func authResponse(u *models.User, token string) *models.AuthResponse {
	return &models.AuthResponse{
		ID:       u.ID,
		Token:    token,
		Name:     u.Name,
		Email:    u.Email,
		IsDoctor: u.IsDoctor,
		DoctorID: u.DoctorID,
	}
}

// Register creates an account and returns a signed session token. Emails are
// stored lowercased so the unique index catches case-variant duplicates.
func (s *DefaultUserService) Register(in models.UserRegistration) (*models.AuthResponse, error) {
	logger := utils.GetLogger()
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ValidationError{Msg: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", zap.String("userID", u.ID))
	return authResponse(u, token), nil
}

// Authenticate verifies credentials and returns a fresh session token,
// invalidating any previously issued one.
func (s *DefaultUserService) Authenticate(in models.UserCredentials) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil {
		return nil, AuthError{Msg: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, AuthError{Msg: "invalid email or password"}
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, err
	}
	return authResponse(u, token), nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, NotFoundError{ID: id}
	}
	return u, nil
}

// UpdateFCMToken stores the device push token used for appointment pushes.
func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	if token == "" {
		return ValidationError{Msg: "fcmToken is required"}
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"fcmToken": token}); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}

// Logout revokes the current session by clearing the stored token hash and
// evicting the cache entry.
func (s *DefaultUserService) Logout(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict session cache entry",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}
