package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// AccountRepo implements the accounts.AccountRepo interface
type AccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(cfg *models.Config, db *sqlx.DB) *AccountRepo {
	return &AccountRepo{
		cfg: cfg,
		db:  db,
	}
}

const userColumns = `
	id, email, password_hash, full_name, role, is_active,
	created_at, updated_at`

const driverColumns = `
	uid, user_id, full_name, phone, vehicle_make, vehicle_plate,
	is_active, created_at, updated_at`

// GetUserByEmail retrieves an account by email, nil when missing
func (r *AccountRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// GetDriverByUserID retrieves the driver profile behind an account, nil
// when the account has none
func (r *AccountRepo) GetDriverByUserID(ctx context.Context, userID string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1`

	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver by user id: %w", err)
	}

	return &driver, nil
}

// CreateDriver inserts the login account and the driver profile in one
// transaction. Missing ids and timestamps are generated here.
func (r *AccountRepo) CreateDriver(ctx context.Context, user *models.User, driver *models.Driver) error {
	prepareUser(user)
	prepareDriver(driver, user.ID)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertUser := `
		INSERT INTO users (
			id, email, password_hash, full_name, role, is_active,
			created_at, updated_at
		) VALUES (
			:id, :email, :password_hash, :full_name, :role, :is_active,
			:created_at, :updated_at
		)`

	if _, err := tx.NamedExecContext(ctx, insertUser, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	insertDriver := `
		INSERT INTO drivers (
			uid, user_id, full_name, phone, vehicle_make, vehicle_plate,
			is_active, created_at, updated_at
		) VALUES (
			:uid, :user_id, :full_name, :phone, :vehicle_make, :vehicle_plate,
			:is_active, :created_at, :updated_at
		)`

	if _, err := tx.NamedExecContext(ctx, insertDriver, driver); err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDriver retrieves one driver profile by uid, nil when missing
func (r *AccountRepo) GetDriver(ctx context.Context, driverUID string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE uid = $1`

	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, query, driverUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &driver, nil
}

// ListDrivers retrieves every driver profile, newest first
func (r *AccountRepo) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY created_at DESC`

	var drivers []models.Driver
	if err := r.db.SelectContext(ctx, &drivers, query); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	return drivers, nil
}

func prepareUser(user *models.User) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := models.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
}

func prepareDriver(driver *models.Driver, userID string) {
	if driver.UID == "" {
		driver.UID = uuid.New().String()
	}
	driver.UserID = userID
	now := models.Now()
	if driver.CreatedAt.IsZero() {
		driver.CreatedAt = now
	}
	driver.UpdatedAt = now
}
