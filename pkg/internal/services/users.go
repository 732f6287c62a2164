package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

func GetUser(id uint) (models.User, error) {
	var user models.User
	if err := database.C.Where("id = ?", id).First(&user).Error; err != nil {
		return user, wrapQueryError(err, "user")
	}
	return user, nil
}

func CountUser(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		return count, err
	}
	return count, nil
}

func ListUser(tx *gorm.DB, take int, offset int) ([]models.User, error) {
	var users []models.User
	if err := tx.
		Limit(take).Offset(offset).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return users, err
	}
	return users, nil
}

func NewUser(user models.User, password string) (models.User, error) {
	if !usernamePattern.MatchString(user.Username) {
		return user, newError(ErrValidation, "username may only contain letters, digits and @/./+/-/_")
	}
	if len(password) == 0 {
		return user, newError(ErrValidation, "password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user, fmt.Errorf("unable to hash password: %v", err)
	}
	user.Password = string(hash)
	if len(user.Role) == 0 {
		user.Role = models.UserRoleUser
	}

	if err := database.C.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user, newError(ErrValidation, "user with this email or username already exists")
		}
		return user, err
	}

	log.Info().Uint("uid", user.ID).Str("username", user.Username).Msg("A new user has been registered.")
	return user, nil
}

func CheckUserPassword(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func SetUserPassword(user models.User, current, password string) error {
	if !CheckUserPassword(user, current) {
		return newError(ErrValidation, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("unable to hash password: %v", err)
	}
	if err := database.C.Model(&user).Update("password", string(hash)).Error; err != nil {
		return err
	}

	InvalidUserAuthCache(user.ID)
	return nil
}

// CompleteUserSubscribed fills IsSubscribed on users for the viewer.
// Anonymous viewers see every flag as false.
func CompleteUserSubscribed(viewer *models.User, users ...*models.User) error {
	if viewer == nil || len(users) == 0 {
		return nil
	}

	idx := lo.Uniq(lo.Map(users, func(item *models.User, _ int) uint {
		return item.ID
	}))

	var authorIDs []uint
	if err := database.C.Model(&models.Subscription{}).
		Where("user_id = ? AND author_id IN ?", viewer.ID, idx).
		Pluck("author_id", &authorIDs).Error; err != nil {
		return fmt.Errorf("unable to load subscriptions: %v", err)
	}

	for _, user := range users {
		user.IsSubscribed = lo.Contains(authorIDs, user.ID)
	}
	return nil
}
