package service

import (
	"errors"

	"gorm.io/gorm"

	"rockrev/entity"
)

// Follows is the follow/unfollow toggle
type Follows struct {
	db *gorm.DB
}

// NewFollows makes the follow service
func NewFollows(conn *gorm.DB) *Follows {
	return &Follows{db: conn}
}

// FollowResult reports whether the follow already existed
type FollowResult struct {
	Follow           entity.Follow
	AlreadyFollowing bool
}

// Follow subscribes a user to a band. A second follow of the same band is
// idempotent and reports AlreadyFollowing instead of erroring.
func (s *Follows) Follow(userID, bandID uint) (*FollowResult, error) {
	var band entity.Band
	if err := s.db.First(&band, bandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "band"}
		}
		return nil, err
	}
	var existing entity.Follow
	err := s.db.Preload("FollowingBand").
		Where("user_id = ? AND following_band_id = ?", userID, bandID).
		First(&existing).Error
	if err == nil {
		return &FollowResult{Follow: existing, AlreadyFollowing: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	follow := entity.Follow{UserID: userID, FollowingBandID: bandID}
	if err := s.db.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a concurrent race, the row exists now
			if rerr := s.db.Preload("FollowingBand").
				Where("user_id = ? AND following_band_id = ?", userID, bandID).
				First(&existing).Error; rerr != nil {
				return nil, rerr
			}
			return &FollowResult{Follow: existing, AlreadyFollowing: true}, nil
		}
		return nil, err
	}
	follow.FollowingBand = band
	return &FollowResult{Follow: follow}, nil
}

// Unfollow removes a subscription. Unfollowing a band the user does not
// follow is a not-found condition, not a silent success.
func (s *Follows) Unfollow(userID, bandID uint) error {
	result := s.db.Where("user_id = ? AND following_band_id = ?", userID, bandID).Delete(&entity.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "follow"}
	}
	return nil
}

// ListByUser returns the follows of one user
func (s *Follows) ListByUser(userID uint) ([]entity.Follow, error) {
	return entity.ListFollowsByUser(s.db, userID)
}
