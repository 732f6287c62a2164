package models

import "time"

type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_favorite_user_recipe"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	RecipeID  uint      `json:"recipe_id" gorm:"uniqueIndex:idx_favorite_user_recipe"`
	Recipe    Recipe    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

type ShoppingCart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_shopping_cart_user_recipe"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	RecipeID  uint      `json:"recipe_id" gorm:"uniqueIndex:idx_shopping_cart_user_recipe"`
	Recipe    Recipe    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
