package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testJWTSecret, time.Hour)

	user, err := svc.Register(context.Background(), "Alex", "alex@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "alex@example.com", user.Email)
	// The stored hash is never the raw password.
	assert.NotEqual(t, "s3cret-password", user.PasswordHash)

	token, loggedIn, err := svc.Login(context.Background(), "alex@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	// The token carries the user id in the claim the middleware reads.
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.Hex(), claims["uid"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testJWTSecret, time.Hour)

	_, err := svc.Register(context.Background(), "Alex", "alex@example.com", "s3cret-password")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "alex@example.com", "another-password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testJWTSecret, time.Hour)

	_, err := svc.Register(context.Background(), "Alex", "alex@example.com", "s3cret-password")
	require.NoError(t, err)

	// Wrong password and unknown email report the same error.
	_, _, err = svc.Login(context.Background(), "alex@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "s3cret-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestNewAuthServicePanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService(newFakeUserRepo(), "", time.Hour)
	})
}
