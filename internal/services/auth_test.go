package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/quizforge/quizforge/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockWriter := NewMockUserWriter(ctrl)
		mockJWT := NewMockTokenIssuer(ctrl)

		mockWriter.EXPECT().
			Save(ctx, "alice", "alice@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, passwordHash string) (uuid.UUID, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret123")))
				return userID, nil
			})
		mockJWT.EXPECT().
			Generate(ctx, userID, "alice").
			Return("token-value", nil)

		svc := NewAuthService(mockReader, mockWriter, mockJWT)

		token, user, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "token-value", token)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("unique violation maps to ErrUserAlreadyExists", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockWriter := NewMockUserWriter(ctrl)
		mockJWT := NewMockTokenIssuer(ctrl)

		mockWriter.EXPECT().
			Save(ctx, "alice", "alice@example.com", gomock.Any()).
			Return(uuid.Nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		svc := NewAuthService(mockReader, mockWriter, mockJWT)

		token, user, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("other save errors pass through", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockWriter := NewMockUserWriter(ctrl)
		mockJWT := NewMockTokenIssuer(ctrl)

		saveErr := errors.New("connection reset")
		mockWriter.EXPECT().
			Save(ctx, "alice", "alice@example.com", gomock.Any()).
			Return(uuid.Nil, saveErr)

		svc := NewAuthService(mockReader, mockWriter, mockJWT)

		_, _, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
		assert.ErrorIs(t, err, saveErr)
		assert.NotErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("token generation failure", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockWriter := NewMockUserWriter(ctrl)
		mockJWT := NewMockTokenIssuer(ctrl)

		mockWriter.EXPECT().
			Save(ctx, "alice", "alice@example.com", gomock.Any()).
			Return(userID, nil)
		mockJWT.EXPECT().
			Generate(ctx, userID, "alice").
			Return("", errors.New("signing failure"))

		svc := NewAuthService(mockReader, mockWriter, mockJWT)

		token, user, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &models.UserDB{
		UserID:       userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockWriter := NewMockUserWriter(ctrl)
		mockJWT := NewMockTokenIssuer(ctrl)

		mockReader.EXPECT().
			GetByEmail(ctx, "alice@example.com").
			Return(stored, nil)
		mockJWT.EXPECT().
			Generate(ctx, userID, "alice").
			Return("token-value", nil)

		svc := NewAuthService(mockReader, mockWriter, mockJWT)

		token, user, err := svc.Login(ctx, "alice@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "token-value", token)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockWriter := NewMockUserWriter(ctrl)
		mockJWT := NewMockTokenIssuer(ctrl)

		mockReader.EXPECT().
			GetByEmail(ctx, "nobody@example.com").
			Return(nil, nil)

		svc := NewAuthService(mockReader, mockWriter, mockJWT)

		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockWriter := NewMockUserWriter(ctrl)
		mockJWT := NewMockTokenIssuer(ctrl)

		mockReader.EXPECT().
			GetByEmail(ctx, "alice@example.com").
			Return(stored, nil)

		svc := NewAuthService(mockReader, mockWriter, mockJWT)

		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("reader failure passes through", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockWriter := NewMockUserWriter(ctrl)
		mockJWT := NewMockTokenIssuer(ctrl)

		readErr := errors.New("connection reset")
		mockReader.EXPECT().
			GetByEmail(ctx, "alice@example.com").
			Return(nil, readErr)

		svc := NewAuthService(mockReader, mockWriter, mockJWT)

		_, _, err := svc.Login(ctx, "alice@example.com", "secret123")
		assert.ErrorIs(t, err, readErr)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("not a pg error")))
}
