package entity

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered account
type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Email      string `gorm:"size:200;uniqueIndex" json:"email"`
	Username   string `gorm:"size:30;uniqueIndex" json:"username"`
	Password   string `gorm:"size:100" json:"-"`
	IsStaff    bool   `json:"is_staff"`
	TelegramID *int64 `gorm:"uniqueIndex" json:"-"`
	CreatedAt  time.Time `json:"-"`
}

// Profile is the 1:1 public profile of a user
type Profile struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             uint       `gorm:"uniqueIndex" json:"-"`
	User               User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Bio                string     `gorm:"size:500" json:"bio"`
	Avatar             string     `json:"avatar"`
	BirthDate          *time.Time `json:"birth_date"`
	FavouriteSubGenres []SubGenre `gorm:"many2many:profile_favourite_subgenres;constraint:OnDelete:CASCADE;" json:"favourite_subgenres"`
}

// GetUserByEmail returns the user with the given email
func GetUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByTelegramID returns the user linked to the given chat
func GetUserByTelegramID(db *gorm.DB, chatID int64) (*User, error) {
	var user User
	if err := db.Where("telegram_id = ?", chatID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
