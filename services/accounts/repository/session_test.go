package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/database"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

func setupSessionRepoTest(t *testing.T) (*SessionRepo, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	client := &database.RedisClient{Client: db}
	repo := NewSessionRepository(&models.Config{}, client)

	t.Cleanup(func() {
		db.Close()
	})

	return repo, mock
}

func sampleSession() *models.Session {
	issued := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	return &models.Session{
		UserID:    "c4f9e7d2-8a31-4b6e-9d05-2f7a1c8e6b43",
		Role:      models.RoleDispatcher,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(time.Hour),
	}
}

func TestSaveSession_Success(t *testing.T) {
	repo, mock := setupSessionRepoTest(t)

	session := sampleSession()
	payload, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet("user:session:"+session.UserID, string(payload), time.Hour).SetVal("OK")

	err = repo.SaveSession(context.Background(), session)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_RedisError(t *testing.T) {
	repo, mock := setupSessionRepoTest(t)

	session := sampleSession()
	payload, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet("user:session:"+session.UserID, string(payload), time.Hour).
		SetErr(errors.New("connection reset"))

	err = repo.SaveSession(context.Background(), session)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_ExpiryBeforeIssue(t *testing.T) {
	repo, mock := setupSessionRepoTest(t)

	session := sampleSession()
	session.ExpiresAt = session.IssuedAt.Add(-time.Minute)

	err := repo.SaveSession(context.Background(), session)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSession(t *testing.T) {
	userID := "c4f9e7d2-8a31-4b6e-9d05-2f7a1c8e6b43"

	testCases := []struct {
		name       string
		mockSetup  func(mock redismock.ClientMock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectDel("user:session:" + userID).SetVal(1)
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Redis error",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectDel("user:session:" + userID).SetErr(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to delete session")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupSessionRepoTest(t)

			tc.mockSetup(mock)

			err := repo.DeleteSession(context.Background(), userID)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionActive(t *testing.T) {
	userID := "c4f9e7d2-8a31-4b6e-9d05-2f7a1c8e6b43"

	testCases := []struct {
		name      string
		mockSetup func(mock redismock.ClientMock)
		expected  bool
	}{
		{
			name: "Live session",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet("user:session:" + userID).SetVal(`{"userId":"` + userID + `"}`)
			},
			expected: true,
		},
		{
			name: "No session",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet("user:session:" + userID).RedisNil()
			},
			expected: false,
		},
		{
			name: "Redis down fails open",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet("user:session:" + userID).SetErr(errors.New("connection refused"))
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupSessionRepoTest(t)

			tc.mockSetup(mock)

			active := repo.SessionActive(context.Background(), userID)

			assert.Equal(t, tc.expected, active)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
