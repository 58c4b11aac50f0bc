package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"rockrev/entity"
	"rockrev/storage"
)

// Profiles serves the 1:1 user profiles
type Profiles struct {
	db     *gorm.DB
	images *storage.Store
}

// NewProfiles makes the profile service
func NewProfiles(conn *gorm.DB, images *storage.Store) *Profiles {
	return &Profiles{db: conn, images: images}
}

// ProfileInput is a profile update payload
type ProfileInput struct {
	Bio                string     `json:"bio"`
	Avatar             string     `json:"avatar"`
	BirthDate          *time.Time `json:"birth_date"`
	FavouriteSubGenres []string   `json:"favourite_subgenres"`
}

// ProfileRead is a profile with its user's public fields attached
type ProfileRead struct {
	ID                 uint              `json:"id"`
	Username           string            `json:"user"`
	Bio                string            `json:"bio"`
	Avatar             string            `json:"avatar"`
	BirthDate          *time.Time        `json:"birth_date"`
	FavouriteSubGenres []entity.SubGenre `json:"favourite_subgenres"`
	FollowingBands     []entity.Follow   `json:"following_bands"`
	Reviews            []entity.Review   `json:"reviews"`
}

// GetByUsername returns the profile of the named user
func (s *Profiles) GetByUsername(username string) (*ProfileRead, error) {
	var user entity.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "profile"}
	}
	if err != nil {
		return nil, err
	}
	return s.read(user)
}

// Update changes profile fields, owner or staff only. Favourite subgenres are
// resolved through the normalizer like title associations.
func (s *Profiles) Update(actor entity.User, username string, input ProfileInput) (*ProfileRead, error) {
	var user entity.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "profile"}
	}
	if err != nil {
		return nil, err
	}
	if user.ID != actor.ID && !actor.IsStaff {
		return nil, &PermissionError{Reason: "only the owner or staff may edit a profile"}
	}
	var profile entity.Profile
	if err := s.db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return nil, err
	}
	fields := map[string]interface{}{"bio": input.Bio, "birth_date": input.BirthDate}
	if input.Avatar != "" {
		url, err := s.images.SaveDataURI(input.Avatar)
		if errors.Is(err, storage.ErrBadPayload) {
			return nil, &ValidationError{Reason: "malformed image payload"}
		}
		if err != nil {
			return nil, err
		}
		fields["avatar"] = url
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&profile).Updates(fields).Error; err != nil {
			return err
		}
		subgenres, err := ResolveSubGenres(tx, input.FavouriteSubGenres)
		if err != nil {
			return err
		}
		return tx.Model(&profile).Association("FavouriteSubGenres").Replace(subgenres)
	})
	if err != nil {
		return nil, err
	}
	return s.read(user)
}

// List returns all profiles
func (s *Profiles) List() ([]ProfileRead, error) {
	var users []entity.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	reads := make([]ProfileRead, 0, len(users))
	for _, user := range users {
		read, err := s.read(user)
		if err != nil {
			return nil, err
		}
		reads = append(reads, *read)
	}
	return reads, nil
}

func (s *Profiles) read(user entity.User) (*ProfileRead, error) {
	var profile entity.Profile
	err := s.db.Preload("FavouriteSubGenres").Where("user_id = ?", user.ID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	follows, err := entity.ListFollowsByUser(s.db, user.ID)
	if err != nil {
		return nil, err
	}
	var reviews []entity.Review
	if err := s.db.Where("author_id = ?", user.ID).Order("id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return &ProfileRead{
		ID:                 profile.ID,
		Username:           user.Username,
		Bio:                profile.Bio,
		Avatar:             profile.Avatar,
		BirthDate:          profile.BirthDate,
		FavouriteSubGenres: profile.FavouriteSubGenres,
		FollowingBands:     follows,
		Reviews:            reviews,
	}, nil
}
