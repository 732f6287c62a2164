package services

import (
	"context"
	"testing"
	"time"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	testutil.NewDatabase(t)

	user, err := NewUser(models.User{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
	}, "wonderland")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, models.UserRoleUser, user.Role)
	require.NotEqual(t, "wonderland", user.Password)
	require.True(t, CheckUserPassword(user, "wonderland"))

	_, err = NewUser(models.User{Email: "alice@example.com", Username: "other"}, "wonderland")
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewUser(models.User{Email: "bad@example.com", Username: "with space"}, "wonderland")
	require.ErrorIs(t, err, ErrValidation)
}

func TestSetUserPassword(t *testing.T) {
	testutil.NewDatabase(t)
	user := testutil.NewUser(t, "alice")

	require.ErrorIs(t, SetUserPassword(user, "wrong", "next-pass"), ErrValidation)
	require.NoError(t, SetUserPassword(user, testutil.Password, "next-pass"))

	user, err := GetUser(user.ID)
	require.NoError(t, err)
	require.True(t, CheckUserPassword(user, "next-pass"))
}

func TestAuthenticate(t *testing.T) {
	testutil.NewDatabase(t)
	user := testutil.NewUser(t, "alice")

	_, err := Authenticate(user.Email, "wrong")
	require.ErrorIs(t, err, ErrValidation)
	_, err = Authenticate("nobody@example.com", testutil.Password)
	require.ErrorIs(t, err, ErrValidation)

	token, err := Authenticate(user.Email, testutil.Password)
	require.NoError(t, err)
	require.NotEmpty(t, token.Key)

	ctx := context.Background()
	current, err := GetUserByToken(ctx, token.Key)
	require.NoError(t, err)
	require.Equal(t, user.ID, current.ID)

	require.NoError(t, RevokeAuthToken(ctx, token.Key))
	_, err = GetUserByToken(ctx, token.Key)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.ErrorIs(t, RevokeAuthToken(ctx, token.Key), ErrUnauthorized)
}

func TestGetUserByTokenRejectsUnknown(t *testing.T) {
	testutil.NewDatabase(t)

	_, err := GetUserByToken(context.Background(), "")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = GetUserByToken(context.Background(), "missing")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestDoAutoDatabaseCleanup(t *testing.T) {
	testutil.NewDatabase(t)
	user := testutil.NewUser(t, "alice")

	require.NoError(t, database.C.Create(&models.AuthToken{
		Key:       "expired",
		UserID:    user.ID,
		ExpiredAt: time.Now().Add(-time.Minute),
	}).Error)
	fresh, err := NewAuthToken(user)
	require.NoError(t, err)

	_, err = GetUserByToken(context.Background(), "expired")
	require.ErrorIs(t, err, ErrUnauthorized)

	DoAutoDatabaseCleanup()

	var keys []string
	require.NoError(t, database.C.Model(&models.AuthToken{}).Pluck("key", &keys).Error)
	require.Equal(t, []string{fresh.Key}, keys)
}

func TestCompleteUserSubscribed(t *testing.T) {
	testutil.NewDatabase(t)
	author := testutil.NewUser(t, "author")
	other := testutil.NewUser(t, "other")
	user := testutil.NewUser(t, "alice")

	_, err := SubscribeToUser(user, author.ID, 0)
	require.NoError(t, err)

	require.NoError(t, CompleteUserSubscribed(&user, &author, &other))
	require.True(t, author.IsSubscribed)
	require.False(t, other.IsSubscribed)

	author.IsSubscribed = false
	require.NoError(t, CompleteUserSubscribed(nil, &author))
	require.False(t, author.IsSubscribed)
}
