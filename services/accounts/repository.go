package accounts

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/BidumanADT/bellwood-admin/services/accounts AccountRepo,SessionStore

// AccountRepo defines the account persistence operations
type AccountRepo interface {
	// GetUserByEmail returns the account for an email, nil when missing.
	// Matching is case-insensitive.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetDriverByUserID returns the driver profile behind a user account,
	// nil when the account has none
	GetDriverByUserID(ctx context.Context, userID string) (*models.Driver, error)

	// CreateDriver inserts the login account and the driver profile in
	// one transaction
	CreateDriver(ctx context.Context, user *models.User, driver *models.Driver) error

	// GetDriver returns one driver profile by uid, nil when missing
	GetDriver(ctx context.Context, driverUID string) (*models.Driver, error)

	// ListDrivers returns every driver profile, newest first
	ListDrivers(ctx context.Context) ([]models.Driver, error)
}

// SessionStore holds the server-side session records behind issued
// tokens. Deleting a record revokes the token before its expiry.
type SessionStore interface {
	// SaveSession stores a session record for its remaining lifetime
	SaveSession(ctx context.Context, session *models.Session) error

	// DeleteSession removes a user's session record
	DeleteSession(ctx context.Context, userID string) error

	// SessionActive reports whether a user still has a session record
	SessionActive(ctx context.Context, userID string) bool
}
