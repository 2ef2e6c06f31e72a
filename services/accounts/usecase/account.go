package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/jwt"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/utils"
	"github.com/BidumanADT/bellwood-admin/services/accounts"
)

// accountUC implements the accounts.AccountUC interface
type accountUC struct {
	cfg      *models.Config
	repo     accounts.AccountRepo
	sessions accounts.SessionStore
}

// NewAccountUC creates a new account use case
func NewAccountUC(
	cfg *models.Config,
	repo accounts.AccountRepo,
	sessions accounts.SessionStore,
) (accounts.AccountUC, error) {
	return &accountUC{
		cfg:      cfg,
		repo:     repo,
		sessions: sessions,
	}, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password return the same error so callers cannot probe for
// registered accounts.
func (uc *accountUC) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := uc.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	if user == nil {
		return nil, accounts.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, accounts.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, accounts.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("account %s has malformed id: %w", user.Email, err)
	}

	var token string
	var expiresAt int64
	if user.Role == models.RoleDriver {
		driver, err := uc.repo.GetDriverByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve driver profile: %w", err)
		}
		if driver == nil {
			return nil, fmt.Errorf("driver account %s has no profile", user.Email)
		}
		driverUID, err := uuid.Parse(driver.UID)
		if err != nil {
			return nil, fmt.Errorf("driver profile %s has malformed uid: %w", driver.UID, err)
		}
		token, expiresAt, err = jwtpkg.GenerateDriverToken(userID, user.Email, driverUID, uc.cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
	} else {
		token, expiresAt, err = jwtpkg.GenerateToken(userID, user.Email, user.Role, uc.cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
	}

	expiry := time.Unix(expiresAt, 0).UTC()
	session := &models.Session{
		UserID:    user.ID,
		Role:      user.Role,
		IssuedAt:  models.Now(),
		ExpiresAt: expiry,
	}
	if err := uc.sessions.SaveSession(ctx, session); err != nil {
		// A token without a session record would be unrevokable
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.InfoCtx(ctx, "User logged in",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)))

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiry,
		Role:      user.Role,
		FullName:  user.FullName,
	}, nil
}

// Logout revokes the caller's session, invalidating the token before
// its JWT expiry
func (uc *accountUC) Logout(ctx context.Context, caller models.CallerIdentity) error {
	if caller.UserID == "" {
		return accounts.ErrUnauthorized
	}

	if err := uc.sessions.DeleteSession(ctx, caller.UserID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	logger.InfoCtx(ctx, "User logged out",
		logger.String("user_id", caller.UserID))

	return nil
}

// CreateDriver onboards a chauffeur: a login account plus a driver
// profile, created together
func (uc *accountUC) CreateDriver(ctx context.Context, caller models.CallerIdentity, req models.CreateDriverRequest) (*models.Driver, error) {
	if !caller.IsStaff() {
		return nil, accounts.ErrUnauthorized
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, accounts.ErrEmailTaken
	}

	// Phone is optional at onboarding but must be dialable when given
	phone := strings.TrimSpace(req.Phone)
	if phone != "" {
		valid, normalized, err := utils.ValidatePhone(phone)
		if err != nil || !valid {
			return nil, accounts.ErrInvalidPhone
		}
		phone = normalized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         models.RoleDriver,
		IsActive:     true,
	}
	driver := &models.Driver{
		FullName:     req.FullName,
		Phone:        phone,
		VehicleMake:  req.VehicleMake,
		VehiclePlate: req.VehiclePlate,
		IsActive:     true,
	}

	if err := uc.repo.CreateDriver(ctx, user, driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	logger.InfoCtx(ctx, "Driver onboarded",
		logger.String("driver_uid", driver.UID),
		logger.String("created_by", caller.UserID))

	return driver, nil
}

// ListDrivers retrieves every driver profile for staff
func (uc *accountUC) ListDrivers(ctx context.Context, caller models.CallerIdentity) (*models.DriverListResponse, error) {
	if !caller.IsStaff() {
		return nil, accounts.ErrUnauthorized
	}

	drivers, err := uc.repo.ListDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	return &models.DriverListResponse{
		Count:   len(drivers),
		Drivers: drivers,
	}, nil
}

// GetDriver retrieves one driver profile. Staff can fetch any driver;
// a driver can fetch only themselves.
func (uc *accountUC) GetDriver(ctx context.Context, caller models.CallerIdentity, driverUID string) (*models.Driver, error) {
	if !caller.IsStaff() && caller.DriverUID != driverUID {
		return nil, accounts.ErrUnauthorized
	}

	driver, err := uc.repo.GetDriver(ctx, driverUID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve driver %s: %w", driverUID, err)
	}
	if driver == nil {
		return nil, accounts.ErrDriverNotFound
	}

	return driver, nil
}
