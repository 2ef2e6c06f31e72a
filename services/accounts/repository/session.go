package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/database"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// SessionRepo keeps login sessions in Redis. A token is only honored
// while its session record exists, so deleting the record revokes the
// token before its JWT expiry.
type SessionRepo struct {
	cfg    *models.Config
	client *database.RedisClient
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(cfg *models.Config, client *database.RedisClient) *SessionRepo {
	return &SessionRepo{
		cfg:    cfg,
		client: client,
	}
}

// SaveSession stores the session under the user key. The record expires
// together with the token, so Redis cleans up after itself.
func (r *SessionRepo) SaveSession(ctx context.Context, session *models.Session) error {
	ttl := session.ExpiresAt.Sub(session.IssuedAt)
	if ttl <= 0 {
		return fmt.Errorf("session expiry %s is not after issue time %s", session.ExpiresAt, session.IssuedAt)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserSession, session.UserID)
	if err := r.client.Set(ctx, key, string(payload), ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// DeleteSession removes the session record, revoking the token
func (r *SessionRepo) DeleteSession(ctx context.Context, userID string) error {
	key := fmt.Sprintf(constants.KeyUserSession, userID)
	if err := r.client.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// SessionActive reports whether the user still has a live session.
// Redis being down must not lock everyone out, so lookup failures other
// than a missing key count as active.
func (r *SessionRepo) SessionActive(ctx context.Context, userID string) bool {
	key := fmt.Sprintf(constants.KeyUserSession, userID)

	_, err := r.client.Get(ctx, key)
	if err == nil {
		return true
	}
	if errors.Is(err, redis.Nil) {
		return false
	}

	logger.WarnCtx(ctx, "Failed to check session, allowing request",
		logger.String("user_id", userID),
		logger.Err(err))
	return true
}
