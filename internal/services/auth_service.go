package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// AuthService is the authentication collaborator: account creation, login,
// logout, and who-am-I.
type AuthService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error)
	Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*dtos.CurrentUserResponse, error)
	GetRoles(ctx context.Context, userID uuid.UUID) (models.RoleSet, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	roleRepo    repositories.RoleRepository
	jwt         JWTService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	roleRepo repositories.RoleRepository,
	jwt JWTService,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		jwt:         jwt,
	}
}

// Register creates the login, a dealer profile and the dealer role, then
// signs the user in.
func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to check email", err)
	}
	if existing != nil {
		return nil, utils.NewAppError(http.StatusConflict, utils.ErrCodeConflict, "Email already registered", utils.ErrEmailExists)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to hash password", err)
	}

	user := &models.User{ID: uuid.New(), Email: email, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create user", err)
	}

	fullName := strings.TrimSpace(req.FullName)
	profile := &models.Profile{
		ID:          uuid.New(),
		UserID:      user.ID,
		Email:       email,
		FullName:    &fullName,
		CompanyName: utils.NilIfBlank(req.CompanyName),
		Phone:       utils.NilIfBlank(req.Phone),
		IsActive:    true,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create profile", err)
	}
	if err := s.roleRepo.Assign(ctx, user.ID, models.RoleDealer); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to assign role", err)
	}

	utils.Logger.WithField("user_id", user.ID).Info("Registered new dealer")
	return s.issue(user, profile, models.NewRoleSet(models.RoleDealer))
}

func (s *authService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to look up user", err)
	}
	if user == nil || !utils.PasswordMatches(user.PasswordHash, req.Password) {
		return nil, utils.NewAppError(http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", utils.ErrInvalidCredentials)
	}

	profile, roles, err := s.profileAndRoles(ctx, user.ID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load account", err)
	}
	if profile != nil && !profile.IsActive {
		return nil, utils.NewAppError(http.StatusForbidden, utils.ErrCodeLockedAccount, "Account is deactivated", utils.ErrAccountInactive)
	}
	return s.issue(user, profile, roles)
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.jwt.Revoke(ctx, tokenID, expiresAt); err != nil {
		return utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to log out", err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*dtos.CurrentUserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to look up user", err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}
	profile, roles, err := s.profileAndRoles(ctx, userID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load account", err)
	}
	resp := currentUser(user, profile, roles)
	return &resp, nil
}

func (s *authService) GetRoles(ctx context.Context, userID uuid.UUID) (models.RoleSet, error) {
	return s.roleRepo.ListByUser(ctx, userID)
}

// profileAndRoles loads both halves of an account concurrently.
func (s *authService) profileAndRoles(ctx context.Context, userID uuid.UUID) (*models.Profile, models.RoleSet, error) {
	var (
		profile *models.Profile
		roles   models.RoleSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.profileRepo.GetByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		roles, err = s.roleRepo.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return profile, roles, nil
}

func (s *authService) issue(user *models.User, profile *models.Profile, roles models.RoleSet) (*dtos.AuthResponse, error) {
	tok, exp, err := s.jwt.GenerateAccessToken(user.ID, roles)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Token generation failed", err)
	}
	return &dtos.AuthResponse{
		AccessToken: tok,
		ExpiresAt:   exp,
		User:        currentUser(user, profile, roles),
	}, nil
}

func currentUser(user *models.User, profile *models.Profile, roles models.RoleSet) dtos.CurrentUserResponse {
	return dtos.CurrentUserResponse{
		UserID:       user.ID,
		Email:        user.Email,
		Profile:      profile,
		Roles:        roles.Strings(),
		IsDealer:     roles.IsDealer(),
		IsSuperadmin: roles.IsSuperadmin(),
	}
}
