package services

import (
	"context"
	"fmt"

	"transfer-backend/internal/auth"
	"transfer-backend/internal/cache"
	"transfer-backend/internal/models"
	"transfer-backend/internal/repositories"
)

type UserService struct {
	Repo       UserStore
	JWTManager *auth.JWTManager
}

func NewUserService(repo UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
	}
}

func (s *UserService) CreateUser(ctx context.Context, u *models.User) error {
	if u.Role != "" && !models.ValidRole(u.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, u.Role)
	}
	if err := s.validateAssociation(ctx, u); err != nil {
		return err
	}
	// Hash password if provided
	if u.PasswordHash != "" {
		hashedPassword, err := auth.HashPassword(u.PasswordHash)
		if err != nil {
			return err
		}
		u.PasswordHash = hashedPassword
	}
	return s.Repo.Create(ctx, u)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return u, nil
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

// UpdateUser updates an existing user. Role changes and the
// enduser-to-client association are validated here; the association
// must always point to a client-role user.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	if user.Role != "" && !models.ValidRole(user.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, user.Role)
	}
	if err := s.validateAssociation(ctx, user); err != nil {
		return err
	}
	// If password is provided, hash it
	if user.PasswordHash != "" {
		hashedPassword, err := auth.HashPassword(user.PasswordHash)
		if err != nil {
			return err
		}
		user.PasswordHash = hashedPassword
	}
	return s.Repo.Update(ctx, user)
}

// DeleteUser deletes a user
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// Signup creates a new enduser account with hashed password
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", ErrValidation)
	}

	// Check if user already exists
	existingUser, _ := s.Repo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, fmt.Errorf("%w: user with this email already exists", ErrDuplicate)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         models.RoleEndUser,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// Login authenticates a user and returns a JWT token. Verified
// credentials are cached in Redis so repeat logins skip the bcrypt
// check; the cache degrades to a miss when Redis is down.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if userID, ok := cache.GetCachedAuth(ctx, req.Email, req.Password); ok {
		user, err := s.Repo.Get(ctx, userID)
		if err == nil {
			token, err := s.JWTManager.GenerateToken(user)
			if err != nil {
				return nil, err
			}
			return &models.AuthResponse{Token: token, User: user}, nil
		}
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrValidation)
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, fmt.Errorf("%w: invalid email or password", ErrValidation)
	}

	cache.CacheAuth(ctx, req.Email, req.Password, user.ID)

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// validateAssociation enforces that associated_client, when set,
// references a user holding the client role
func (s *UserService) validateAssociation(ctx context.Context, u *models.User) error {
	if u.AssociatedClientID == nil {
		return nil
	}
	associated, err := s.Repo.Get(ctx, *u.AssociatedClientID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return fmt.Errorf("%w: associated client %d does not exist", ErrValidation, *u.AssociatedClientID)
		}
		return err
	}
	if associated.Role != models.RoleClient {
		return fmt.Errorf("%w: associated client must have the client role", ErrValidation)
	}
	return nil
}
