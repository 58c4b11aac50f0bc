package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"rockrev/entity"
	"rockrev/storage"
)

// Bands is the band catalog managed by staff
type Bands struct {
	db     *gorm.DB
	images *storage.Store
}

// NewBands makes the band service
func NewBands(conn *gorm.DB, images *storage.Store) *Bands {
	return &Bands{db: conn, images: images}
}

// BandInput is a band create/update payload; Image is an optional
// base64 data URI
type BandInput struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Create adds a band under its case-folded name
func (s *Bands) Create(input BandInput) (*entity.Band, error) {
	name := strings.ToLower(strings.TrimSpace(input.Name))
	if name == "" {
		return nil, &ValidationError{Reason: "name is required"}
	}
	band := entity.Band{Name: name, Description: input.Description}
	if input.Image != "" {
		url, err := s.images.SaveDataURI(input.Image)
		if errors.Is(err, storage.ErrBadPayload) {
			return nil, &ValidationError{Reason: "malformed image payload"}
		}
		if err != nil {
			return nil, err
		}
		band.Image = url
	}
	if err := s.db.Create(&band).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Reason: "band already exists"}
		}
		return nil, err
	}
	return &band, nil
}

// Update changes description and image; the name stays the canonical identity
func (s *Bands) Update(bandID uint, input BandInput) (*entity.Band, error) {
	var band entity.Band
	if err := s.db.First(&band, bandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "band"}
		}
		return nil, err
	}
	fields := map[string]interface{}{"description": input.Description}
	if input.Image != "" {
		url, err := s.images.SaveDataURI(input.Image)
		if errors.Is(err, storage.ErrBadPayload) {
			return nil, &ValidationError{Reason: "malformed image payload"}
		}
		if err != nil {
			return nil, err
		}
		fields["image"] = url
	}
	if err := s.db.Model(&band).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &band, nil
}

// Delete removes a band; follows and association rows cascade
func (s *Bands) Delete(bandID uint) error {
	result := s.db.Delete(&entity.Band{}, bandID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "band"}
	}
	return nil
}

// Get returns one band
func (s *Bands) Get(bandID uint) (*entity.Band, error) {
	var band entity.Band
	if err := s.db.First(&band, bandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "band"}
		}
		return nil, err
	}
	return &band, nil
}

// List returns all bands
func (s *Bands) List() ([]entity.Band, error) {
	var bands []entity.Band
	if err := s.db.Order("id").Find(&bands).Error; err != nil {
		return nil, err
	}
	return bands, nil
}

// SubGenres is the subgenre catalog managed by staff
type SubGenres struct {
	db *gorm.DB
}

// NewSubGenres makes the subgenre service
func NewSubGenres(conn *gorm.DB) *SubGenres {
	return &SubGenres{db: conn}
}

// Create adds a subgenre under its case-folded name
func (s *SubGenres) Create(name string) (*entity.SubGenre, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, &ValidationError{Reason: "name is required"}
	}
	subgenre := entity.SubGenre{Name: name}
	if err := s.db.Create(&subgenre).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Reason: "subgenre already exists"}
		}
		return nil, err
	}
	return &subgenre, nil
}

// Delete removes a subgenre; association rows cascade
func (s *SubGenres) Delete(subGenreID uint) error {
	result := s.db.Delete(&entity.SubGenre{}, subGenreID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "subgenre"}
	}
	return nil
}

// List returns all subgenres
func (s *SubGenres) List() ([]entity.SubGenre, error) {
	var subgenres []entity.SubGenre
	if err := s.db.Order("id").Find(&subgenres).Error; err != nil {
		return nil, err
	}
	return subgenres, nil
}
