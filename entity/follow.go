package entity

import (
	"gorm.io/gorm"
)

// Follow is a subscription of a user to a band
type Follow struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	UserID          uint `gorm:"uniqueIndex:user_band_unique" json:"-"`
	User            User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FollowingBandID uint `gorm:"uniqueIndex:user_band_unique" json:"-"`
	FollowingBand   Band `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"following_band"`
}

// BandWithFollowers is a band row annotated with its follower count
type BandWithFollowers struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Image          string `json:"image"`
	Description    string `json:"description"`
	FollowersCount int64  `json:"followers_count"`
}

// PopularBands returns bands ordered by follower count, band id breaks ties
func PopularBands(db *gorm.DB, limit int) ([]BandWithFollowers, error) {
	var bands []BandWithFollowers
	err := db.Model(&Band{}).
		Select("bands.id, bands.name, bands.image, bands.description, COUNT(follows.id) AS followers_count").
		Joins("LEFT JOIN follows ON follows.following_band_id = bands.id").
		Group("bands.id").
		Order("followers_count DESC, bands.id ASC").
		Limit(limit).
		Scan(&bands).Error
	if err != nil {
		return nil, err
	}
	return bands, nil
}

// FollowersWithTelegram returns followers of a band having a linked chat identity
func FollowersWithTelegram(db *gorm.DB, bandID uint) ([]User, error) {
	var users []User
	err := db.Model(&User{}).
		Joins("JOIN follows ON follows.user_id = users.id").
		Where("follows.following_band_id = ? AND users.telegram_id IS NOT NULL", bandID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListFollowsByUser returns the follows of one user with bands preloaded
func ListFollowsByUser(db *gorm.DB, userID uint) ([]Follow, error) {
	var follows []Follow
	err := db.Preload("FollowingBand").Where("user_id = ?", userID).Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}
