package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	localCache "github.com/foodgram/foodgram/pkg/internal/cache"
	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type authTokenState struct {
	User      models.User
	ExpiredAt time.Time
}

func GetAuthTokenCacheKey(key string) string {
	return fmt.Sprintf("auth-token#%s", key)
}

func GetUserAuthCacheTag(id uint) string {
	return fmt.Sprintf("user#%d", id)
}

func NewAuthToken(user models.User) (models.AuthToken, error) {
	token := models.AuthToken{
		Key:       strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserID:    user.ID,
		ExpiredAt: time.Now().Add(viper.GetDuration("security.token_ttl")),
	}

	if err := database.C.Create(&token).Error; err != nil {
		return token, fmt.Errorf("unable to issue token: %v", err)
	}
	return token, nil
}

// Authenticate exchanges credentials for a fresh token.
func Authenticate(email, password string) (models.AuthToken, error) {
	var user models.User
	if err := database.C.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AuthToken{}, newError(ErrValidation, "unable to log in with provided credentials")
		}
		return models.AuthToken{}, err
	}
	if !CheckUserPassword(user, password) {
		return models.AuthToken{}, newError(ErrValidation, "unable to log in with provided credentials")
	}

	return NewAuthToken(user)
}

func GetUserByToken(ctx context.Context, key string) (models.User, error) {
	if len(key) == 0 {
		return models.User{}, newError(ErrUnauthorized, "invalid token")
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)

	cacheKey := GetAuthTokenCacheKey(key)
	if val, err := marshal.Get(ctx, cacheKey, new(authTokenState)); err == nil {
		state := val.(*authTokenState)
		if state.ExpiredAt.After(time.Now()) {
			return state.User, nil
		}
	}

	var token models.AuthToken
	if err := database.C.
		Where(&models.AuthToken{Key: key}).
		Preload("User").
		First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return token.User, newError(ErrUnauthorized, "invalid token")
		}
		return token.User, err
	}
	if token.ExpiredAt.Before(time.Now()) {
		return token.User, newError(ErrUnauthorized, "token has expired")
	}

	_ = marshal.Set(
		ctx,
		cacheKey,
		authTokenState{User: token.User, ExpiredAt: token.ExpiredAt},
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"auth-token", GetUserAuthCacheTag(token.UserID)}),
	)

	return token.User, nil
}

func RevokeAuthToken(ctx context.Context, key string) error {
	if len(key) == 0 {
		return newError(ErrUnauthorized, "invalid token")
	}

	tx := database.C.Where(&models.AuthToken{Key: key}).Delete(&models.AuthToken{})
	if tx.Error != nil {
		return tx.Error
	} else if tx.RowsAffected == 0 {
		return newError(ErrUnauthorized, "invalid token")
	}

	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Delete(ctx, GetAuthTokenCacheKey(key))
	return nil
}

// InvalidUserAuthCache drops every cached token state that belongs to the user.
func InvalidUserAuthCache(id uint) {
	cacheManager := cache.New[any](localCache.S)
	if err := cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{GetUserAuthCacheTag(id)}),
	); err != nil {
		log.Warn().Err(err).Uint("uid", id).Msg("Unable to invalidate auth cache...")
	}
}

func DoAutoDatabaseCleanup() {
	deadline := time.Now()
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up expired auth tokens...")

	tx := database.C.Where("expired_at < ?", deadline).Delete(&models.AuthToken{})
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up auth tokens...")
		return
	}

	log.Debug().Int64("count", tx.RowsAffected).Msg("Clean up expired auth tokens completed.")
}
