package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/types"
)

// DBClient is the persistence surface the server depends on. *db.DB
// implements it; tests substitute fakes.
type DBClient interface {
	// users
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// resumes
	CreateResume(ctx context.Context, userID uuid.UUID, rec types.ResumeRecord) (*types.ResumeRecord, error)
	GetResume(ctx context.Context, userID, resumeID uuid.UUID) (*types.ResumeRecord, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]types.ResumeSummary, error)
	UpdateResume(ctx context.Context, userID uuid.UUID, rec types.ResumeRecord) (*types.ResumeRecord, error)
	DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) (bool, error)
}

// UserService provides business logic for account operations
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// convertDBUser converts db.User to types.User, excluding the password hash
func convertDBUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:        dbUser.ID,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}

// Signup creates a new account with password authentication
func (s *UserService) Signup(ctx context.Context, req *types.SignupRequest) (*types.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return convertDBUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: always return the generic error whether the account is
	// missing or the password is wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return convertDBUser(dbUser), nil
}

// GetUserByID returns the account for an authenticated user ID
func (s *UserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return convertDBUser(dbUser), nil
}
