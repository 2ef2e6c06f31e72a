package accounts

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/BidumanADT/bellwood-admin/services/accounts AccountUC

// AccountUC defines the account use case operations
type AccountUC interface {
	// Login checks credentials and issues a session token
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)

	// Logout revokes the caller's session record
	Logout(ctx context.Context, caller models.CallerIdentity) error

	// CreateDriver onboards a driver account and profile; staff only
	CreateDriver(ctx context.Context, caller models.CallerIdentity, req models.CreateDriverRequest) (*models.Driver, error)

	// ListDrivers returns all driver profiles; staff only
	ListDrivers(ctx context.Context, caller models.CallerIdentity) (*models.DriverListResponse, error)

	// GetDriver returns one driver profile; staff or the driver themselves
	GetDriver(ctx context.Context, caller models.CallerIdentity, driverUID string) (*models.Driver, error)
}
