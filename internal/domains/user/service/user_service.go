package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"
)

// bcrypt cost 12: balance between hashing latency and resistance to
// offline attacks.
const bcryptCost = 12

// userService implements user.Service.
type userService struct {
	repo    user.Repository
	tokens  *jwt.Manager
	limiter user.LoginLimiter
}

// NewUserService creates the service instance.
func NewUserService(repo user.Repository, tokens *jwt.Manager, limiter user.LoginLimiter) user.Service {
	return &userService{
		repo:    repo,
		tokens:  tokens,
		limiter: limiter,
	}
}

// Register creates a user with a freshly hashed password.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. HASH PASSWORD
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. PERSIST - the unique index is the duplicate check, so two
	// concurrent registrations cannot both succeed
	created, err := s.repo.Create(ctx, &user.User{
		Username:       req.Username,
		FavouriteGenre: req.FavouriteGenre,
		PasswordHash:   string(passwordHash),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"username": created.Username,
	})
	return created, nil
}

// Login verifies credentials and issues a bearer token. Unknown user
// and wrong password collapse into one error so responses cannot be
// used to enumerate usernames.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// 2. CHECK ATTEMPT LIMITER
	allowed, err := s.limiter.Allow(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("login limiter: %w", err)
	}
	if !allowed {
		return nil, user.ErrTooManyAttempts
	}

	// 3. FIND USER
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, s.failAttempt(ctx, req.Username)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 4. VERIFY PASSWORD (constant-time comparison)
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, s.failAttempt(ctx, req.Username)
	}

	// 5. ISSUE TOKEN
	token, err := s.tokens.Issue(u.Username, u.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if err := s.limiter.Reset(ctx, req.Username); err != nil {
		// Login already succeeded; a stale counter is not worth failing over.
		logger.Warn("reset login attempts failed", map[string]interface{}{
			"username": req.Username,
		})
	}

	return &user.LoginResponse{Token: token}, nil
}

func (s *userService) failAttempt(ctx context.Context, username string) error {
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		logger.Error("record failed login attempt", err)
	}
	return user.ErrInvalidCredentials
}

// GetProfile loads a user and resolves the friends references.
func (s *userService) GetProfile(ctx context.Context, id primitive.ObjectID) (*user.Profile, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	friends, err := s.repo.GetByIDs(ctx, u.FriendIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve friends: %w", err)
	}

	return &user.Profile{User: *u, Friends: friends}, nil
}
