package models

import "time"

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

type User struct {
	BaseModel

	Email     string `json:"email" gorm:"uniqueIndex;size:254"`
	Username  string `json:"username" gorm:"uniqueIndex;size:150"`
	FirstName string `json:"first_name" gorm:"size:150"`
	LastName  string `json:"last_name" gorm:"size:150"`
	Password  string `json:"-"`
	Role      string `json:"-" gorm:"size:50"`

	Recipes []Recipe `json:"-" gorm:"foreignKey:AuthorID"`

	IsSubscribed bool `json:"is_subscribed" gorm:"-"`
}

func (v User) IsAdmin() bool {
	return v.Role == UserRoleAdmin
}

// UserWithRecipes is the author card shown in subscription listings.
type UserWithRecipes struct {
	User
	Recipes      []RecipeMinified `json:"recipes"`
	RecipesCount int64            `json:"recipes_count"`
}

type AuthToken struct {
	Key       string    `json:"auth_token" gorm:"primaryKey;size:64"`
	UserID    uint      `json:"-" gorm:"index"`
	User      User      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiredAt time.Time `json:"expired_at" gorm:"index"`
}
